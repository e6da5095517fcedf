package configurator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Walid-EM/restaurantsitev0-sub000/internal/catalog"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/enums"
	pkgerrors "github.com/Walid-EM/restaurantsitev0-sub000/pkg/errors"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/money"
)

// State enumerates the configurator lifecycle. A configurator is opened
// against one product, walks its steps, and either commits one configured
// selection or is cancelled. Both the stepped flow and the zero-step
// "simple product" flow are terminal shapes of the same machine.
type State int

const (
	StateClosed State = iota
	StateSelecting
)

// Selection is the committed outcome of a configuration run.
type Selection struct {
	Product   catalog.ProductDTO
	Options   []catalog.OptionDTO
	UnitPrice money.Cents
}

// Configurator accumulates per-step selections for one product and prices
// them as it goes. It is not safe for concurrent use; one shopper drives
// one configurator at a time.
type Configurator struct {
	state     State
	product   catalog.ProductDTO
	steps     []catalog.StepDTO
	stepIndex int
	// selected keeps per-group selection order so receipts list options
	// the way the shopper picked them.
	selected map[enums.GroupKind][]catalog.OptionDTO
}

// Open starts a configuration run for the product. An empty step list is
// valid: the run degrades to a single confirm with no selection stage.
func Open(product catalog.ProductDTO, steps []catalog.StepDTO) *Configurator {
	return &Configurator{
		state:    StateSelecting,
		product:  product,
		steps:    steps,
		selected: map[enums.GroupKind][]catalog.OptionDTO{},
	}
}

// State returns the current lifecycle state.
func (c *Configurator) State() State {
	return c.state
}

// HasSteps reports whether the product exposes any configuration stage.
func (c *Configurator) HasSteps() bool {
	return len(c.steps) > 0
}

// StepIndex returns the zero-based index of the current step.
func (c *Configurator) StepIndex() int {
	return c.stepIndex
}

// CurrentStep returns the step under selection, or false for simple products.
func (c *Configurator) CurrentStep() (catalog.StepDTO, bool) {
	if c.state != StateSelecting || len(c.steps) == 0 {
		return catalog.StepDTO{}, false
	}
	return c.steps[c.stepIndex], true
}

// Next advances to the following step. On the last step it reports done,
// which callers treat as finish.
func (c *Configurator) Next() (done bool) {
	if c.state != StateSelecting {
		return false
	}
	if c.stepIndex >= len(c.steps)-1 {
		return true
	}
	c.stepIndex++
	return false
}

// Previous steps back; at the first step it is a no-op.
func (c *Configurator) Previous() {
	if c.state != StateSelecting {
		return
	}
	if c.stepIndex > 0 {
		c.stepIndex--
	}
}

// Toggle flips the selection state of an option in the current step.
// Multi-select groups accumulate; single-select groups replace whatever
// was selected before, and re-selecting the active option clears it.
func (c *Configurator) Toggle(optionID uuid.UUID) error {
	if c.state != StateSelecting {
		return pkgerrors.New(pkgerrors.CodeConflict, "configurator is closed")
	}
	step, ok := c.CurrentStep()
	if !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "product has no configuration steps")
	}

	option, ok := findOption(step, optionID)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("option does not belong to the %s step", step.Kind))
	}

	c.toggleInGroup(step.Kind, option)
	return nil
}

func (c *Configurator) toggleInGroup(kind enums.GroupKind, option catalog.OptionDTO) {
	current := c.selected[kind]

	for i, active := range current {
		if active.ID == option.ID {
			// Deselect, for both multi- and single-select groups.
			c.selected[kind] = append(current[:i:i], current[i+1:]...)
			return
		}
	}

	if kind.MultiSelect() {
		c.selected[kind] = append(current, option)
		return
	}
	// Single-select: the newest pick wins, whatever was there is dropped.
	c.selected[kind] = []catalog.OptionDTO{option}
}

// SelectedOptions returns the active options ordered by canonical group
// order, then by selection order within each group. Free options are
// included; their price contribution is zero but receipts still list them.
func (c *Configurator) SelectedOptions() []catalog.OptionDTO {
	var out []catalog.OptionDTO
	for _, kind := range enums.CanonicalOrder() {
		out = append(out, c.selected[kind]...)
	}
	return out
}

// UnitPrice recomputes the configured price from scratch: base price plus
// the sum of every selected option. Nothing is cached, so the value can
// never go stale.
func (c *Configurator) UnitPrice() money.Cents {
	total := c.product.PriceCents
	for _, option := range c.SelectedOptions() {
		total += option.PriceCents
	}
	return total
}

// Finish commits the run: it returns the selection snapshot and closes
// the machine. Finishing with zero steps and zero selections is the
// simple-product path and prices at exactly the base price.
func (c *Configurator) Finish() (*Selection, error) {
	if c.state != StateSelecting {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "configurator is closed")
	}

	selection := &Selection{
		Product:   c.product,
		Options:   c.SelectedOptions(),
		UnitPrice: c.UnitPrice(),
	}
	c.close()
	return selection, nil
}

// Cancel discards all transient state without touching any cart.
func (c *Configurator) Cancel() {
	c.close()
}

func (c *Configurator) close() {
	c.state = StateClosed
	c.stepIndex = 0
	c.selected = map[enums.GroupKind][]catalog.OptionDTO{}
}

// Compose runs the machine non-interactively: it opens the product, walks
// the steps in order applying the requested option IDs with the same
// toggle semantics, and finishes. Options that belong to no step are
// rejected. This is the server-side path behind "add to cart": the
// interactive UI and the HTTP API share one set of selection rules.
func Compose(product catalog.ProductDTO, steps []catalog.StepDTO, optionIDs []uuid.UUID) (*Selection, error) {
	c := Open(product, steps)

	for _, id := range optionIDs {
		stepIdx, ok := stepIndexForOption(steps, id)
		if !ok {
			c.Cancel()
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("option %s is not available for this product", id))
		}
		c.stepIndex = stepIdx
		if err := c.Toggle(id); err != nil {
			c.Cancel()
			return nil, err
		}
	}

	return c.Finish()
}

func stepIndexForOption(steps []catalog.StepDTO, optionID uuid.UUID) (int, bool) {
	for i, step := range steps {
		if _, ok := findOption(step, optionID); ok {
			return i, true
		}
	}
	return 0, false
}

func findOption(step catalog.StepDTO, optionID uuid.UUID) (catalog.OptionDTO, bool) {
	for _, option := range step.Options {
		if option.ID == optionID {
			return option, true
		}
	}
	return catalog.OptionDTO{}, false
}
