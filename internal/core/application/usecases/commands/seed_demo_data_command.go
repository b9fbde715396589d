package commands

import (
	"errors"
	"math"
	"strings"

	"myfood/internal/pkg/errs"
	"myfood/internal/pkg/guard"
)

var ErrSeedDemoDataCommandIsNotConstructed = errors.New(
	"SeedDemoDataCommand must be created via NewSeedDemoDataCommand constructor",
)

// DemoMenu names the four dishes of a seeded menu.
type DemoMenu struct {
	Price     float64
	Appetizer string
	First     string
	Second    string
	Dessert   string
	Visible   bool
}

// SeedDemoDataCommand fills an empty database with users, pickup slots and menus.
type SeedDemoDataCommand struct { //nolint:recvcheck //using for validation
	users      []string
	slotLimits []int
	menus      []DemoMenu

	guard guard.ConstructorGuard
}

func NewSeedDemoDataCommand(users []string, slotLimits []int, menus []DemoMenu) (SeedDemoDataCommand, error) {
	cmd := SeedDemoDataCommand{
		guard: guard.NewConstructorGuard(),
	}

	var errList []error
	for _, name := range users {
		if strings.TrimSpace(name) == "" {
			errList = append(errList, errs.NewValueIsRequiredError("user name"))
		}
	}
	for _, limit := range slotLimits {
		if limit < 0 {
			errList = append(errList, errs.NewValueIsOutOfRangeError("slot limit", limit, 0, math.MaxInt))
		}
	}
	for _, m := range menus {
		if m.Price < 0 || math.IsNaN(m.Price) || math.IsInf(m.Price, 0) {
			errList = append(errList, errs.NewValueIsOutOfRangeError("menu price", m.Price, 0, math.MaxFloat64))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return SeedDemoDataCommand{}, err
	}

	cmd.users = append([]string(nil), users...)
	cmd.slotLimits = append([]int(nil), slotLimits...)
	cmd.menus = append([]DemoMenu(nil), menus...)
	return cmd, nil
}

// DefaultSeedDemoDataCommand returns the data set a fresh development
// environment starts with.
func DefaultSeedDemoDataCommand() SeedDemoDataCommand {
	cmd, _ := NewSeedDemoDataCommand(
		[]string{"Lucia", "Mateo"},
		[]int{2, 2, 4},
		[]DemoMenu{
			{Price: 12.5, Appetizer: "Gazpacho", First: "Paella", Second: "Merluza a la romana", Dessert: "Flan", Visible: true},
			{Price: 11, Appetizer: "Croquetas", First: "Lentejas", Second: "Pollo al ajillo", Dessert: "Natillas", Visible: false},
		},
	)
	return cmd
}

func (c SeedDemoDataCommand) Validate() error {
	return c.guard.Validate(ErrSeedDemoDataCommandIsNotConstructed)
}

func (c SeedDemoDataCommand) Users() []string {
	return append([]string(nil), c.users...)
}

func (c SeedDemoDataCommand) SlotLimits() []int {
	return append([]int(nil), c.slotLimits...)
}

func (c SeedDemoDataCommand) Menus() []DemoMenu {
	return append([]DemoMenu(nil), c.menus...)
}
