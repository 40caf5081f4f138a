package security

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrUnauthenticated means the identity service could not resolve a user for
// the caller's credential.
var ErrUnauthenticated = errors.New("user not authenticated")

// ErrForbidden means the caller's resolved role is not in the authorized set.
var ErrForbidden = errors.New("role not authorized")

type Role struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IdentityClient resolves the calling user from their bearer credential.
type IdentityClient interface {
	CurrentUser(token string) (*User, error)
}

// HTTPIdentityClient asks the identity service who the caller is, forwarding
// the caller's own Authorization header. A 401 from the service maps to
// ErrUnauthenticated; any other failure propagates as an infrastructure
// error, never as an authorization decision.
type HTTPIdentityClient struct {
	BaseURL string
}

func NewIdentityClient(baseURL string) *HTTPIdentityClient {
	return &HTTPIdentityClient{BaseURL: baseURL}
}

func (c *HTTPIdentityClient) CurrentUser(token string) (*User, error) {
	agent := fiber.Get(c.BaseURL + "/auth/info")
	if token != "" {
		agent.Set(fiber.HeaderAuthorization, token)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("identity service unreachable: %w", errs[0])
	}
	if code == fiber.StatusUnauthorized {
		return nil, ErrUnauthenticated
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("identity service returned status %d", code)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("identity service response: %w", err)
	}
	return &user, nil
}
