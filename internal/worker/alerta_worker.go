package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/infra"

	"github.com/rs/zerolog/log"
)

// AlertaWorker emails low-stock alerts dequeued from QueueAlertas.
type AlertaWorker struct {
	mailer  *infra.Mailer
	destino string
	negocio string
}

func NewAlertaWorker(mailer *infra.Mailer, destino, negocio string) *AlertaWorker {
	return &AlertaWorker{mailer: mailer, destino: destino, negocio: negocio}
}

func (w *AlertaWorker) Process(_ context.Context, raw json.RawMessage) {
	var alerta dto.AlertaStockResponse
	if err := json.Unmarshal(raw, &alerta); err != nil {
		log.Error().Err(err).Msg("alerta_worker: invalid payload")
		return
	}
	if w.destino == "" {
		log.Warn().Msg("alerta_worker: ALERTAS_EMAIL not configured — skipping")
		return
	}

	asunto := fmt.Sprintf("[%s] Stock bajo: %s", w.negocio, alerta.Nombre)
	cuerpo := fmt.Sprintf(
		"El %s %q quedó con stock %d (mínimo %d).\nRevise el inventario y reponga cuanto antes.",
		alerta.ItemTipo, alerta.Nombre, alerta.Stock, alerta.StockMinimo,
	)
	if err := w.mailer.SendAlerta(w.destino, asunto, cuerpo); err != nil {
		log.Error().Err(err).Str("item", alerta.Nombre).Msg("alerta_worker: failed to send email")
		return
	}
	log.Info().Str("item", alerta.Nombre).Msg("alerta_worker: alerta enviada")
}
