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

// CustomerUseCase casos de uso de la cartera de clientes y sus potenciales por grupo.
type CustomerUseCase struct {
	repo   repository.CustomerRepository
	scopes *ScopeResolver
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, scopes *ScopeResolver) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, scopes: scopes}
}

// List lista filas cliente/grupo del alcance. Total, Page y Limit solo se completan
// cuando la petición es paginada.
func (uc *CustomerUseCase) List(ctx context.Context, id entity.Identity, in dto.CustomerListRequest) (*dto.ClienteGrupoPage, error) {
	scope, err := uc.scopes.Read(ctx, id, in.CodUsuario)
	if err != nil {
		return nil, err
	}
	filter := repository.CustomerFilter{Scope: scope, Search: strings.TrimSpace(in.Busca)}

	out := &dto.ClienteGrupoPage{}
	if in.Page != nil {
		in.Page.Normalize()
		filter.Limit, filter.Offset = in.Page.Limit, in.Page.Offset()
		total, err := uc.repo.CountWithGroups(ctx, filter)
		if err != nil {
			return nil, err
		}
		out.Total, out.Page, out.Limit = total, in.Page.Page, in.Page.Limit
	}

	rows, err := uc.repo.ListWithGroups(ctx, filter)
	if err != nil {
		return nil, err
	}
	out.Dados = make([]dto.ClienteGrupoResponse, 0, len(rows))
	for _, r := range rows {
		out.Dados = append(out.Dados, toClienteGrupoResponse(r))
	}
	return out, nil
}

// SetPotential reemplaza el potencial de compra del par (cliente, grupo).
func (uc *CustomerUseCase) SetPotential(ctx context.Context, id entity.Identity, idCliente, idGrupo string, in dto.UpdatePotentialRequest) error {
	if in.PotencialCompra == nil {
		return fmt.Errorf("%w: potencial_compra é obrigatório", domain.ErrInvalidInput)
	}
	if in.PotencialCompra.IsNegative() {
		return fmt.Errorf("%w: potencial_compra não pode ser negativo", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(idCliente) == "" || strings.TrimSpace(idGrupo) == "" {
		return fmt.Errorf("%w: id_cliente e id_grupo são obrigatórios", domain.ErrInvalidInput)
	}
	scope, err := uc.scopes.Write(id)
	if err != nil {
		return err
	}
	ok, err := uc.repo.UpdatePotential(ctx, scope, idCliente, idGrupo, *in.PotencialCompra)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ListForScheduling clientes del representante para el que se agendaría una visita.
func (uc *CustomerUseCase) ListForScheduling(ctx context.Context, id entity.Identity, codUsuario string) ([]dto.ClienteResumoResponse, error) {
	owner, err := uc.scopes.Owner(ctx, id, codUsuario)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByRepresentative(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResumoResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ClienteResumoResponse{IDCliente: c.ID, Nome: c.Nome})
	}
	return out, nil
}

func toClienteGrupoResponse(r entity.CustomerGroupRow) dto.ClienteGrupoResponse {
	return dto.ClienteGrupoResponse{
		IDCliente:       r.IDCliente,
		NomeCliente:     r.NomeCliente,
		Telefone:        r.Telefone,
		IDGrupo:         r.IDGrupo,
		NomeGrupo:       r.NomeGrupo,
		PotencialCompra: r.PotencialCompra,
		ValorComprado:   r.ValorComprado,
	}
}
