package main

import "net/http"

type navItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Path     string `json:"path"`
	IsActive bool   `json:"is_active"`
}

var navItems = []navItem{
	{ID: "home", Title: "Главная", Path: "/"},
	{ID: "reviews", Title: "Отзывы", Path: "#reviews"},
	{ID: "events", Title: "Мероприятия", Path: "#events"},
	{ID: "gallery", Title: "Галерея", Path: "#gallery"},
	{ID: "contacts", Title: "Контакты", Path: "#contacts"},
}

// navHandler godoc
//
//	@Summary		Navigation menu
//	@Description	Site menu; the item whose id equals ?active= is flagged active
//	@Tags			navigation
//	@Produce		json
//	@Param			active	query	string	false	"Active page id"
//	@Success		200		{array}	navItem
//	@Router			/nav [get]
func (app *application) navHandler(w http.ResponseWriter, r *http.Request) {
	active := r.URL.Query().Get("active")

	items := make([]navItem, len(navItems))
	for i, item := range navItems {
		item.IsActive = active != "" && item.ID == active
		items[i] = item
	}

	if err := app.jsonResponse(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}
