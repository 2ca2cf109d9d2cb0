package api

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/handlers/admin"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
	"github.com/sahilchouksey/pixel-portfolio/views"
)

type APIServer struct {
	app           *fiber.App
	listenAddress string
}

func NewAPIServer(listenAddress string) *APIServer {
	return &APIServer{
		app:           NewApp(),
		listenAddress: listenAddress,
	}
}

// NewApp builds the fiber app with the page templates and error handler
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "Pixel Portfolio",
		Views:        views.NewEngine(),
		ErrorHandler: ErrorHandler,
		BodyLimit:    admin.MaxRequestBody,
	})
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	log.Println("Starting API Server")
	log.Printf("Listening on %s", s.listenAddress)

	return s.app.Listen(s.listenAddress)
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *APIServer) Shutdown() error {
	return s.app.Shutdown()
}

// ErrorHandler renders errors no handler answered. JSON routes keep their
// own body shape, everything else gets the error page.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	path := c.Path()
	switch {
	case strings.HasPrefix(path, "/admin/"):
		return response.Error(c, code, message, errorCode(code))
	case strings.HasPrefix(path, "/api/"):
		return response.Fail(c, code, message)
	}

	c.Status(code)
	if renderErr := c.Render("pages/error", fiber.Map{
		"Title":   "Error",
		"Status":  code,
		"Message": message,
	}, "layouts/main"); renderErr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL_ERROR"
	}
	return "ERROR"
}
