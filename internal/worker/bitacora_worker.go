package worker

import (
	"context"
	"encoding/json"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BitacoraWorker persists audit entries dequeued from QueueBitacora.
type BitacoraWorker struct {
	repo repository.BitacoraRepository
}

func NewBitacoraWorker(repo repository.BitacoraRepository) *BitacoraWorker {
	return &BitacoraWorker{repo: repo}
}

func (w *BitacoraWorker) Process(ctx context.Context, raw json.RawMessage) {
	var entrada dto.BitacoraEntrada
	if err := json.Unmarshal(raw, &entrada); err != nil {
		log.Error().Err(err).Msg("bitacora_worker: invalid payload")
		return
	}

	registro := model.Bitacora{
		Metodo:  entrada.Metodo,
		Ruta:    entrada.Ruta,
		Mensaje: entrada.Mensaje,
	}
	if entrada.UsuarioID != nil {
		if userID, err := uuid.Parse(*entrada.UsuarioID); err == nil {
			registro.UsuarioID = &userID
		}
	}

	if err := w.repo.Create(ctx, &registro); err != nil {
		log.Error().Err(err).Str("ruta", entrada.Ruta).Msg("bitacora_worker: insert failed")
	}
}
