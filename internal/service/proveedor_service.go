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

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
	Obtener(ctx context.Context, codigo string) (*dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, codigo string, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error)
	Desactivar(ctx context.Context, codigo string) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if _, err := s.repo.FindByCodigo(ctx, req.Codigo); err == nil {
		return nil, apierror.Validation("Ya existe un proveedor con ese código")
	}

	proveedor := model.Proveedor{
		Codigo:      req.Codigo,
		RazonSocial: req.RazonSocial,
		Telefono:    req.Telefono,
		Email:       req.Email,
		Direccion:   req.Direccion,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, &proveedor); err != nil {
		return nil, mapError(err, "Error al crear el proveedor")
	}
	resp := proveedorToResponse(&proveedor)
	return &resp, nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err, "Error al listar proveedores")
	}
	resp := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		resp = append(resp, proveedorToResponse(&proveedores[i]))
	}
	return resp, nil
}

func (s *proveedorService) Obtener(ctx context.Context, codigo string) (*dto.ProveedorResponse, error) {
	proveedor, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Proveedor no encontrado")
		}
		return nil, mapError(err, "Error al obtener el proveedor")
	}
	resp := proveedorToResponse(proveedor)
	return &resp, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, codigo string, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Proveedor no encontrado")
		}
		return nil, mapError(err, "Error al obtener el proveedor")
	}

	proveedor.RazonSocial = req.RazonSocial
	proveedor.Telefono = req.Telefono
	proveedor.Email = req.Email
	proveedor.Direccion = req.Direccion
	if err := s.repo.Update(ctx, proveedor); err != nil {
		return nil, mapError(err, "Error al actualizar el proveedor")
	}
	resp := proveedorToResponse(proveedor)
	return &resp, nil
}

func (s *proveedorService) Desactivar(ctx context.Context, codigo string) error {
	if _, err := s.repo.FindByCodigo(ctx, codigo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Proveedor no encontrado")
		}
		return mapError(err, "Error al obtener el proveedor")
	}
	if err := s.repo.SoftDelete(ctx, codigo); err != nil {
		return mapError(err, "Error al desactivar el proveedor")
	}
	return nil
}

func proveedorToResponse(p *model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		Codigo:      p.Codigo,
		RazonSocial: p.RazonSocial,
		Telefono:    p.Telefono,
		Email:       p.Email,
		Direccion:   p.Direccion,
		Activo:      p.Activo,
	}
}
