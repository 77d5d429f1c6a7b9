package feed

import (
	"math"

	"github.com/VitaminP8/lenta/internal/model"
)

// Page - одна страница ленты. Номера страниц начинаются с 1.
type Page struct {
	Posts      []*model.Post
	Number     int
	TotalPages int
	TotalCount int
}

func (p *Page) HasPrev() bool {
	return p.Number > 1
}

func (p *Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// maxPage ограничивает номер страницы сверху, чтобы произведение
// (page-1)*pageSize не переполнило int на гигантских значениях из query.
const maxPage = math.MaxInt32

// NormalizePage приводит номер страницы к допустимому: все, что меньше 1,
// читается как 1, все, что больше maxPage, - как maxPage.
// Страницы за последней не обрезаются - такой запрос вернет пустую страницу.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	if page > maxPage {
		return maxPage
	}
	return page
}

// offsetFor возвращает смещение первой записи страницы.
func offsetFor(page, pageSize int) int {
	return (page - 1) * pageSize
}

// totalPages считает количество страниц: ceil(total / pageSize).
func totalPages(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
