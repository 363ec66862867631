package service

import (
	"context"
	"errors"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/repository"

	"gorm.io/gorm"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Obtener(ctx context.Context, ci string) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, ci string, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, ci string) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if _, err := s.repo.FindByCI(ctx, req.CI); err == nil {
		return nil, apierror.Validation("Ya existe un cliente con ese CI")
	}

	cliente := model.Cliente{
		CI:       req.CI,
		Nombre:   req.Nombre,
		Sexo:     req.Sexo,
		Telefono: req.Telefono,
	}
	if err := s.repo.Create(ctx, &cliente); err != nil {
		return nil, mapError(err, "Error al crear el cliente")
	}
	resp := clienteToResponse(&cliente)
	return &resp, nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err, "Error al listar clientes")
	}
	resp := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		resp = append(resp, clienteToResponse(&clientes[i]))
	}
	return resp, nil
}

func (s *clienteService) Obtener(ctx context.Context, ci string) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByCI(ctx, ci)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Cliente no encontrado")
		}
		return nil, mapError(err, "Error al obtener el cliente")
	}
	resp := clienteToResponse(cliente)
	return &resp, nil
}

func (s *clienteService) Actualizar(ctx context.Context, ci string, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByCI(ctx, ci)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Cliente no encontrado")
		}
		return nil, mapError(err, "Error al obtener el cliente")
	}

	cliente.Nombre = req.Nombre
	cliente.Sexo = req.Sexo
	cliente.Telefono = req.Telefono
	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, mapError(err, "Error al actualizar el cliente")
	}
	resp := clienteToResponse(cliente)
	return &resp, nil
}

func (s *clienteService) Eliminar(ctx context.Context, ci string) error {
	if _, err := s.repo.FindByCI(ctx, ci); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Cliente no encontrado")
		}
		return mapError(err, "Error al obtener el cliente")
	}
	if err := s.repo.Delete(ctx, ci); err != nil {
		return mapError(err, "Error al eliminar el cliente")
	}
	return nil
}

func clienteToResponse(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		CI:       c.CI,
		Nombre:   c.Nombre,
		Sexo:     c.Sexo,
		Telefono: c.Telefono,
	}
}
