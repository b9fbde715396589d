package commands

import (
	"context"
	"errors"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/menu"
	"myfood/internal/core/domain/model/slot"
	"myfood/internal/core/domain/model/user"
	"myfood/internal/core/ports"
	"myfood/internal/pkg/errs"
)

// SeedDemoDataResult reports what the seed inserted.
type SeedDemoDataResult struct {
	Skipped bool
	Users   int
	Slots   int
	Menus   int
}

// SeedDemoDataCommandHandler inserts the demo data set in one transaction.
// It does nothing when the first user already exists, so running it on every
// start is safe.
type SeedDemoDataCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSeedDemoDataCommandHandler(uowFactory CatalogUoWFactory) SeedDemoDataCommandHandler {
	return SeedDemoDataCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *SeedDemoDataCommandHandler) Handle(ctx context.Context, cmd SeedDemoDataCommand) (SeedDemoDataResult, error) {
	if err := cmd.Validate(); err != nil {
		return SeedDemoDataResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SeedDemoDataResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	_, err := userRepo.Get(ctx, kernel.MustNewID(1))
	switch {
	case err == nil:
		return SeedDemoDataResult{Skipped: true}, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return SeedDemoDataResult{}, err
	}

	var result SeedDemoDataResult
	for _, name := range cmd.Users() {
		u, userErr := user.NewUser(name)
		if userErr != nil {
			return SeedDemoDataResult{}, userErr
		}
		if err = userRepo.Add(ctx, u); err != nil {
			return SeedDemoDataResult{}, err
		}
		result.Users++
	}

	slotRepo := uow.SlotRepository()
	for _, limit := range cmd.SlotLimits() {
		s, slotErr := slot.NewSlot(limit)
		if slotErr != nil {
			return SeedDemoDataResult{}, slotErr
		}
		if err = slotRepo.Add(ctx, s); err != nil {
			return SeedDemoDataResult{}, err
		}
		result.Slots++
	}

	menuRepo := uow.MenuRepository()
	for _, demo := range cmd.Menus() {
		m, menuErr := h.addMenu(ctx, menuRepo, demo)
		if menuErr != nil {
			return SeedDemoDataResult{}, menuErr
		}
		if err = menuRepo.Add(ctx, m); err != nil {
			return SeedDemoDataResult{}, err
		}
		result.Menus++
	}

	if err = uow.Commit(ctx); err != nil {
		return SeedDemoDataResult{}, err
	}
	return result, nil
}

func (h *SeedDemoDataCommandHandler) addMenu(
	ctx context.Context,
	repo ports.MenuRepository,
	demo DemoMenu,
) (*menu.Menu, error) {
	courses := []struct {
		name   string
		course menu.Course
	}{
		{demo.Appetizer, menu.Appetizer},
		{demo.First, menu.First},
		{demo.Second, menu.Second},
		{demo.Dessert, menu.Dessert},
	}

	dishes := make([]*menu.Dish, 0, len(courses))
	for _, c := range courses {
		d, err := menu.NewDish(c.name, c.course)
		if err != nil {
			return nil, err
		}
		if err = repo.AddDish(ctx, d); err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}

	return menu.NewMenu(demo.Price, dishes[0], dishes[1], dishes[2], dishes[3], demo.Visible)
}
