package service

import (
	"context"
	"time"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/repository"

	"github.com/rs/zerolog/log"
)

// BitacoraDispatcher enqueues audit entries. Satisfied by *worker.Dispatcher.
type BitacoraDispatcher interface {
	EnqueueBitacora(ctx context.Context, payload interface{}) error
}

// BitacoraService records audit entries. Registrar is fire-and-forget: the
// entry goes to the Redis queue and a worker persists it, so the request that
// produced it never waits on the insert.
type BitacoraService interface {
	Registrar(ctx context.Context, entrada dto.BitacoraEntrada)
	Listar(ctx context.Context, limit int) ([]dto.BitacoraResponse, error)
}

type bitacoraService struct {
	repo       repository.BitacoraRepository
	dispatcher BitacoraDispatcher
}

func NewBitacoraService(repo repository.BitacoraRepository, dispatcher BitacoraDispatcher) BitacoraService {
	return &bitacoraService{repo: repo, dispatcher: dispatcher}
}

func (s *bitacoraService) Registrar(ctx context.Context, entrada dto.BitacoraEntrada) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.EnqueueBitacora(ctx, entrada); err != nil {
		log.Error().Err(err).Str("ruta", entrada.Ruta).Msg("no se pudo encolar la entrada de bitácora")
	}
}

func (s *bitacoraService) Listar(ctx context.Context, limit int) ([]dto.BitacoraResponse, error) {
	entradas, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, mapError(err, "Error al listar la bitácora")
	}
	resp := make([]dto.BitacoraResponse, 0, len(entradas))
	for i := range entradas {
		e := &entradas[i]
		item := dto.BitacoraResponse{
			ID:        e.ID.String(),
			Metodo:    e.Metodo,
			Ruta:      e.Ruta,
			Mensaje:   e.Mensaje,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
		if e.UsuarioID != nil {
			id := e.UsuarioID.String()
			item.UsuarioID = &id
		}
		resp = append(resp, item)
	}
	return resp, nil
}
