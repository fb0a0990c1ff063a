package model

import (
	"time"

	"github.com/casaflow/casaflow/pkg/domain/types"
)

// Client represents a client of the agency
type Client struct {
	ID        types.ClientID
	Name      string
	Email     string `masq:"secret"`
	Phone     string `masq:"secret"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
