package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/agendarep-api/internal/application/dto"
	"github.com/jhoicas/agendarep-api/internal/domain"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
	"github.com/jhoicas/agendarep-api/internal/domain/repository"
)

// VisitUseCase casos de uso de la agenda de visitas.
type VisitUseCase struct {
	repo   repository.VisitRepository
	scopes *ScopeResolver
}

// NewVisitUseCase construye el caso de uso.
func NewVisitUseCase(repo repository.VisitRepository, scopes *ScopeResolver) *VisitUseCase {
	return &VisitUseCase{repo: repo, scopes: scopes}
}

// Create agenda una visita no confirmada para el representante resuelto.
// Cliente o representante inexistentes llegan del repositorio como ErrInvalidInput.
func (uc *VisitUseCase) Create(ctx context.Context, id entity.Identity, in dto.CreateVisitRequest) (*dto.VisitaResponse, error) {
	data, err := entity.ParseDate(in.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	hora, err := entity.ParseHour(in.Hora)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	ref, err := entity.NewCustomerRef(in.IDCliente, in.NomeClienteTemp, in.TelefoneTemp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	owner, err := uc.scopes.Owner(ctx, id, in.CodUsuario)
	if err != nil {
		return nil, err
	}

	v := &entity.Visit{
		Data:       data,
		Hora:       hora,
		Cliente:    ref,
		Observacao: in.Observacao,
		CodUsuario: owner,
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	out := ToVisitaResponse(v)
	return &out, nil
}

// List visitas del alcance entre inicio y fim (inclusive), ordenadas por data y hora.
func (uc *VisitUseCase) List(ctx context.Context, id entity.Identity, in dto.VisitListRequest) ([]dto.VisitaResponse, error) {
	visits, err := uc.listEntities(ctx, id, in)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VisitaResponse, 0, len(visits))
	for _, v := range visits {
		out = append(out, ToVisitaResponse(v))
	}
	return out, nil
}

func (uc *VisitUseCase) listEntities(ctx context.Context, id entity.Identity, in dto.VisitListRequest) ([]*entity.Visit, error) {
	from, to, err := entity.ParseRange(in.Inicio, in.Fim)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	scope, err := uc.scopes.Read(ctx, id, in.CodUsuario)
	if err != nil {
		return nil, err
	}
	return uc.repo.List(ctx, repository.VisitFilter{Scope: scope, From: from, To: to})
}

// Confirm marca la visita como confirmada. Confirmar de nuevo vuelve a sellar la fecha.
func (uc *VisitUseCase) Confirm(ctx context.Context, id entity.Identity, visitID int64) error {
	scope, err := uc.scopes.Write(id)
	if err != nil {
		return err
	}
	ok, err := uc.repo.Confirm(ctx, scope, visitID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateNote reemplaza la observação de la visita.
func (uc *VisitUseCase) UpdateNote(ctx context.Context, id entity.Identity, visitID int64, in dto.UpdateNoteRequest) error {
	if in.Observacao == nil {
		return fmt.Errorf("%w: observacao é obrigatória", domain.ErrInvalidInput)
	}
	scope, err := uc.scopes.Write(id)
	if err != nil {
		return err
	}
	ok, err := uc.repo.UpdateNote(ctx, scope, visitID, *in.Observacao)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ToVisitaResponse proyección JSON de una visita; los campos vacíos del join salen como null.
func ToVisitaResponse(v *entity.Visit) dto.VisitaResponse {
	return dto.VisitaResponse{
		ID:                v.ID,
		Data:              v.Data.Format(entity.DateLayout),
		Hora:              v.Hora,
		IDCliente:         nullable(v.Cliente.IDCliente),
		NomeClienteTemp:   nullable(v.Cliente.NomeTemp),
		TelefoneTemp:      nullable(v.Cliente.TelefoneTemp),
		Observacao:        v.Observacao,
		CodUsuario:        v.CodUsuario,
		Confirmado:        v.Confirmado,
		DataConfirmacao:   v.DataConfirmacao,
		NomeCliente:       nullable(v.NomeCliente),
		NomeRepresentante: nullable(v.NomeRepresentante),
		NomeExibicao:      v.DisplayName(),
	}
}

func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
