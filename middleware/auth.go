package middleware

import (
	"fmt"
	"os"
	"strings"

	"dispatch-backend/constants"
	"dispatch-backend/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated identity attached to every request.
type Principal struct {
	BranchID   uint
	BranchName string
	Role       string
}

// IsAdmin reports whether the principal may see cross-branch data.
func (p Principal) IsAdmin() bool {
	return p.Role == constants.RoleAdmin
}

// VerifyToken parses and validates an HS256 token against the shared secret.
func VerifyToken(tokenString string) (jwt.MapClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	return claims, nil
}

// PrincipalFromClaims extracts the branch identity from token claims.
func PrincipalFromClaims(claims jwt.MapClaims) (Principal, error) {
	branchID, ok := claims["branch_id"].(float64)
	if !ok {
		return Principal{}, fmt.Errorf("branch_id missing in token claims")
	}

	role, _ := claims["role"].(string)
	if role == "" {
		role = constants.RoleBranch
	}

	branchName, _ := claims["branch_name"].(string)

	return Principal{
		BranchID:   uint(branchID),
		BranchName: branchName,
		Role:       role,
	}, nil
}

func roleAllowed(role string, requiredRoles []string) bool {
	for _, required := range requiredRoles {
		if required == constants.RoleAny || required == role {
			return true
		}
	}
	return false
}

// IsAuthenticated is a middleware that checks for a valid JWT token and
// attaches the resolved Principal to the request locals. A missing token is
// a 401; an invalid or expired one, or a role mismatch, is a 403.
func IsAuthenticated(requiredRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Authorization token missing",
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid authorization header format",
			})
		}

		claims, err := VerifyToken(tokenParts[1])
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Status:  fiber.StatusForbidden,
				Message: "Invalid or expired token",
			})
		}

		principal, err := PrincipalFromClaims(claims)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Status:  fiber.StatusForbidden,
				Message: "Invalid token claims",
			})
		}

		if !roleAllowed(principal.Role, requiredRoles) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Status:  fiber.StatusForbidden,
				Message: "Insufficient permissions",
			})
		}

		c.Locals("principal", principal)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// RequireRoles creates a middleware restricted to the given roles
func RequireRoles(roles ...string) fiber.Handler {
	return IsAuthenticated(roles)
}

// RequireAuthentication only requires a valid token without a specific role
func RequireAuthentication() fiber.Handler {
	return IsAuthenticated([]string{constants.RoleAny})
}

// GetPrincipal returns the authenticated principal from the request locals.
func GetPrincipal(c *fiber.Ctx) (Principal, bool) {
	principal, ok := c.Locals("principal").(Principal)
	return principal, ok
}
