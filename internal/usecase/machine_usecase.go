package usecase

import (
	"context"
	"errors"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMachineNotFound  = errors.New("machine not found")
	ErrInvalidMachineID = errors.New("invalid machine id")
)

// IMachineUseCase exposes the equipment registry operations.

type IMachineUseCase interface {
	Register(ctx context.Context, m entities.Machine) (entities.Machine, error)
	GetByID(ctx context.Context, id string) (entities.Machine, error)
	List(ctx context.Context) ([]entities.Machine, error)
}

type MachineUseCase struct {
	repo interfaces.IMachineRepository
}

var _ IMachineUseCase = (*MachineUseCase)(nil)

func NewMachineUseCase(repo interfaces.IMachineRepository) *MachineUseCase {
	return &MachineUseCase{repo: repo}
}

func (u *MachineUseCase) Register(ctx context.Context, m entities.Machine) (entities.Machine, error) {
	m.Brand = strings.TrimSpace(m.Brand)
	m.Model = strings.TrimSpace(m.Model)
	m.SerialNumber = strings.TrimSpace(m.SerialNumber)
	if err := m.Validate(); err != nil {
		return entities.Machine{}, err
	}

	m.ID = uuid.NewString()
	return u.repo.Create(ctx, m)
}

func (u *MachineUseCase) GetByID(ctx context.Context, id string) (entities.Machine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Machine{}, ErrInvalidMachineID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Machine{}, err
	}
	if m.ID == "" {
		return entities.Machine{}, ErrMachineNotFound
	}
	return m, nil
}

func (u *MachineUseCase) List(ctx context.Context) ([]entities.Machine, error) {
	return u.repo.List(ctx)
}
