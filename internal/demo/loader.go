package demo

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// Loader gera um novo dataset a cada chamada. A n-ésima carga usa a semente seed+n,
// então cada atualização muda os números mas continua reproduzível.
type Loader struct {
	mu    sync.Mutex
	seed  uint64
	runs  uint64
	clock func() time.Time
}

func NewLoader(seed uint64) *Loader {
	return &Loader{
		seed:  seed,
		clock: time.Now,
	}
}

// WithClock troca a fonte da data de referência
func (l *Loader) WithClock(clock func() time.Time) *Loader {
	l.clock = clock
	return l
}

func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	seed := l.seed + l.runs
	l.runs++
	l.mu.Unlock()

	dataset, err := NewGenerator(seed).Generate(l.clock().UTC().Truncate(24 * time.Hour))
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset_id": dataset.ID,
		"seed":       seed,
		"channels":   len(dataset.Channels),
		"campaigns":  len(dataset.Campaigns),
	}).Debug("demo: dataset gerado")

	return dataset, nil
}
