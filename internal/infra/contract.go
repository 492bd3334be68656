//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package infra

import "github.com/s21platform/doodle-sync/internal/model"

type SessionValidator interface {
	ValidateSessionToken(tokenString string) (*model.SessionClaims, error)
}
