package dataset

import (
	"sync"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Provider expõe o snapshot imutável do dataset para os casos de uso
type Provider interface {
	Snapshot() (*domain.Dataset, error)
}

// Store memoiza a carga do arquivo para o tempo de vida do processo. Não há
// invalidação: se o arquivo mudar em disco, o snapshot antigo continua sendo
// servido até o restart.
type Store struct {
	loader *Loader

	once    sync.Once
	dataset *domain.Dataset
	err     error
}

func NewStore(loader *Loader) *Store {
	return &Store{
		loader: loader,
	}
}

// Snapshot carrega o dataset na primeira chamada e devolve sempre o mesmo
// resultado (ou o mesmo erro) nas chamadas seguintes
func (s *Store) Snapshot() (*domain.Dataset, error) {
	s.once.Do(func() {
		s.dataset, s.err = s.loader.Load()
	})

	return s.dataset, s.err
}
