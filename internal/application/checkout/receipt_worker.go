package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/dishdash/dishdash-api/pkg/logger"
)

const (
	receiptQueueSize   = 64
	receiptSendTimeout = 30 * time.Second
)

// ReceiptWorker despacha correos de confirmación en segundo plano,
// desacoplado del ciclo request/response. El envío es best-effort: un fallo
// se registra y se descarta, nunca afecta al pedido ya finalizado.
type ReceiptWorker struct {
	sender ReceiptSender
	log    *logger.Logger

	ch   chan Receipt
	wg   sync.WaitGroup
	once sync.Once
}

// NewReceiptWorker construye el worker. Llamar Start antes de encolar.
func NewReceiptWorker(sender ReceiptSender, log *logger.Logger) *ReceiptWorker {
	return &ReceiptWorker{
		sender: sender,
		log:    log,
		ch:     make(chan Receipt, receiptQueueSize),
	}
}

// Start lanza la goroutine de envío.
func (w *ReceiptWorker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for r := range w.ch {
			ctx, cancel := context.WithTimeout(context.Background(), receiptSendTimeout)
			err := w.sender.SendReceipt(ctx, r)
			cancel()
			if err != nil {
				w.log.Error().Err(err).
					Str("email", r.Email).
					Str("transaction_id", r.TransactionID).
					Msg("envío de correo de confirmación falló")
				continue
			}
			w.log.Info().
				Str("email", r.Email).
				Str("transaction_id", r.TransactionID).
				Msg("correo de confirmación enviado")
		}
	}()
}

// Enqueue encola un correo sin bloquear. Si la cola está llena el correo se
// descarta con log: perder un recibo es aceptable, frenar un pedido no.
func (w *ReceiptWorker) Enqueue(r Receipt) {
	select {
	case w.ch <- r:
	default:
		w.log.Warn().
			Str("email", r.Email).
			Msg("cola de correos llena, recibo descartado")
	}
}

// Stop cierra la cola y espera a que se drene lo pendiente.
func (w *ReceiptWorker) Stop() {
	w.once.Do(func() { close(w.ch) })
	w.wg.Wait()
}
