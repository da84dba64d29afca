package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// VersionedEntity extends BaseEntity with a version counter used for
// optimistic locking on read-modify-write cycles.
type VersionedEntity struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// GetVersion returns the entity version
func (e *VersionedEntity) GetVersion() int {
	return e.Version
}

// IncrementVersion increments the version number
func (e *VersionedEntity) IncrementVersion() {
	e.Version++
}

// NewVersionedEntity creates a new versioned entity
func NewVersionedEntity() VersionedEntity {
	return VersionedEntity{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}
