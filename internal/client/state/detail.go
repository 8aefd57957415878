package state

import (
	"context"
	"sort"

	"evosystem/internal/domain/entities"
)

// DetailViewModel tracks the order a user is inspecting plus the annotation
// draft being typed. The draft survives failed submissions so the user does
// not lose their text.
type DetailViewModel struct {
	lifecycle *LifecycleController
	store     *OrderStore
	selected  int
	draft     string
}

func NewDetailViewModel(lifecycle *LifecycleController, store *OrderStore) *DetailViewModel {
	return &DetailViewModel{lifecycle: lifecycle, store: store}
}

func (d *DetailViewModel) Select(id int) {
	d.selected = id
	d.draft = ""
}

func (d *DetailViewModel) SelectedID() int {
	return d.selected
}

// Order returns the selected order from the store, if still present.
func (d *DetailViewModel) Order() (entities.ServiceOrder, bool) {
	return d.store.Get(d.selected)
}

// Annotations returns the selected order's notes newest first for display.
// The underlying order is untouched; its stored notes stay in append order.
func (d *DetailViewModel) Annotations() []entities.Annotation {
	order, ok := d.store.Get(d.selected)
	if !ok {
		return nil
	}
	notes := make([]entities.Annotation, len(order.Anotacoes))
	copy(notes, order.Anotacoes)
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].Data.After(notes[j].Data) })
	return notes
}

func (d *DetailViewModel) Draft() string {
	return d.draft
}

func (d *DetailViewModel) SetDraft(texto string) {
	d.draft = texto
}

// SubmitDraft sends the draft as an annotation. The draft is cleared only
// when the server accepted it.
func (d *DetailViewModel) SubmitDraft(ctx context.Context) error {
	if _, err := d.lifecycle.Annotate(ctx, d.selected, d.draft); err != nil {
		return err
	}
	d.draft = ""
	return nil
}
