package app

import (
	"context"
	"fmt"

	"github.com/verte-zerg/prepdeck/internal/catalog"
	"github.com/verte-zerg/prepdeck/internal/content"
	"github.com/verte-zerg/prepdeck/internal/model"
	"github.com/verte-zerg/prepdeck/internal/profile"
)

// Deps is the preloaded content the State works from.
type Deps struct {
	Profiles     *profile.Store
	Calendar     model.Calendar
	Weekly       model.DailyHours
	Resources    []model.ResourceGroup
	Achievements []model.Achievement
}

// Load seeds a catalog from c, reads everything the dashboard needs and
// closes the catalog again.
func Load(ctx context.Context, c content.Content) (deps Deps, err error) {
	cat, err := catalog.Open(ctx, c)
	if err != nil {
		return Deps{}, err
	}
	defer func() {
		if cerr := cat.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close catalog: %w", cerr)
		}
	}()

	profiles, err := profile.New(ctx, cat)
	if err != nil {
		return Deps{}, err
	}
	groups, err := cat.ResourceGroups(ctx)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to load resources: %w", err)
	}
	badges, err := cat.Achievements(ctx)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to load achievements: %w", err)
	}
	return Deps{
		Profiles:     profiles,
		Calendar:     c.Calendar,
		Weekly:       c.Weekly,
		Resources:    groups,
		Achievements: badges,
	}, nil
}
