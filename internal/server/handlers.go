package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsmostafa/runcode/internal/repl"
)

// WelcomeMessage is returned by the liveness route.
const WelcomeMessage = "Welcome to the JavaScript Code Execution Server. Use the /run_code endpoint to execute JavaScript code."

// RunCodeRequest defines the code execution request
type RunCodeRequest struct {
	Code string `json:"code"`
}

// RunCodeResponse defines the code execution response. Output carries the
// execution error text as well when the code throws.
type RunCodeResponse struct {
	Output string `json:"output"`
}

// HomeHandler confirms the server is running
func (s *Server) HomeHandler(c *gin.Context) {
	c.String(http.StatusOK, WelcomeMessage)
}

// RunCodeHandler executes the submitted code against the shared namespace
func (s *Server) RunCodeHandler(c *gin.Context) {
	var req RunCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	if req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No code provided",
		})
		return
	}

	c.JSON(http.StatusOK, RunCodeResponse{
		Output: repl.Execute(s.ns, req.Code),
	})
}
