package news

// PublishedAtLayout — формат времени публикации в ответах API.
// ISO-8601 в UTC с суффиксом Z: лексикографический порядок строк совпадает
// с хронологическим, поэтому сортировка по строке безопасна.
const PublishedAtLayout = "2006-01-02T15:04:05Z"

// Region type — грубая классификация статьи относительно локации запроса.
const (
	RegionWithinCity   = "within_city"
	RegionWithinRegion = "within_region"
	RegionOther        = "other"
	RegionGlobal       = "global"
)

// Place — геокодированное место, извлечённое из текста статьи.
type Place struct {
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Radius float64 `json:"radius,omitempty"` // расстояние до опорной точки, км
}

// Article — статья после нормализации и обогащения. Статьи не сохраняются:
// каждый запрос собирает список заново из живых RSS-лент.
type Article struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	PublishedAt string  `json:"publishedAt"`
	Source      string  `json:"source"`
	Places      []Place `json:"places"`
	Rank        int     `json:"rank"`
	RegionType  string  `json:"region_type,omitempty"`
}

// SourceInfo — описание источника для эндпоинта /news/sources.
type SourceInfo struct {
	Name string `json:"name"`
	Rank int    `json:"rank"`
	URL  string `json:"url"`
}
