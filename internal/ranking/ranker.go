package ranking

import (
	"sort"

	"github.com/adnan/news_geo_api/internal/config"
	"github.com/adnan/news_geo_api/internal/news"
)

// defaultFactor присваивается каждому показателю источника вне таблицы.
const defaultFactor = 50

// Factors — три независимых статических показателя источника.
type Factors struct {
	Base        int
	Popularity  int
	Credibility int
}

// Ranker вычисляет ранг источника по статической таблице факторов.
// Ранг — чистая функция имени источника: содержимое статей не участвует.
type Ranker struct {
	factors map[string]Factors
	sources []config.Source
}

// New создаёт ранкер из списка настроенных источников.
func New(sources []config.Source) *Ranker {
	factors := make(map[string]Factors, len(sources))
	for _, src := range sources {
		factors[src.Name] = Factors{
			Base:        src.BaseRank,
			Popularity:  src.Popularity,
			Credibility: src.Credibility,
		}
	}
	return &Ranker{factors: factors, sources: sources}
}

// Rank возвращает целочисленный ранг в диапазоне [0,100].
// Неизвестный источник получает все три фактора по defaultFactor.
func (r *Ranker) Rank(source string) int {
	f, ok := r.factors[source]
	if !ok {
		f = Factors{Base: defaultFactor, Popularity: defaultFactor, Credibility: defaultFactor}
	}

	rank := (f.Base + f.Popularity + f.Credibility) / 3
	if rank < 0 {
		rank = 0
	}
	if rank > 100 {
		rank = 100
	}
	return rank
}

// Sources возвращает настроенные источники с рангами, по убыванию ранга.
func (r *Ranker) Sources() []news.SourceInfo {
	infos := make([]news.SourceInfo, 0, len(r.sources))
	for _, src := range r.sources {
		infos = append(infos, news.SourceInfo{
			Name: src.Name,
			Rank: r.Rank(src.Name),
			URL:  src.URL,
		})
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].Rank > infos[j].Rank
	})
	return infos
}
