//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package profile

import (
	"github.com/s21platform/doodle-sync/internal/model"
)

type ProfileApplier interface {
	ApplyProfileUpdate(user model.User)
}
