package usecase

import (
	"fmt"
	"strings"

	"grafica_xpto/internal/domain/entities"

	"github.com/google/uuid"
)

// Process-wide defaults applied to freshly generated groups.
const (
	defaultProductionDays  = 5
	combinedProductionDays = 7
)

// GenerateGroups builds the initial group set for a quote under the given
// strategy. Custom starts exactly like separate; the difference is that only
// custom sessions accept group mutations afterwards.
func GenerateGroups(q entities.Quote, strategy entities.PartitionStrategy) ([]entities.Group, error) {
	switch strategy {
	case entities.StrategySeparate, entities.StrategyCustom:
		groups := make([]entities.Group, 0, len(q.Items))
		for _, it := range q.Items {
			groups = append(groups, entities.Group{
				ID:                     uuid.NewString(),
				Name:                   it.ProductName,
				Items:                  []entities.LineItem{it},
				UrgencyLevel:           entities.UrgencyNormal,
				ExpectedProductionDays: defaultProductionDays,
				DesignApprovalRequired: true,
				EstimatedValue:         it.TotalPrice,
			})
		}
		return groups, nil
	case entities.StrategyCombined:
		items := make([]entities.LineItem, len(q.Items))
		copy(items, q.Items)
		return []entities.Group{{
			ID:                     uuid.NewString(),
			Name:                   fmt.Sprintf("Quote %s - all items", q.QuoteNumber),
			Items:                  items,
			UrgencyLevel:           entities.UrgencyNormal,
			ExpectedProductionDays: combinedProductionDays,
			DesignApprovalRequired: true,
			EstimatedValue:         q.TotalAmount,
		}}, nil
	}
	return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidStrategy, strategy)
}

// mergeGroups unions the items of the selected groups into one new group
// placed at the first selected group's position.
//
// Merged fields are deliberately conservative: production days is the max
// over inputs, design approval is forced on, and urgency resets to normal so
// the combined workload gets reassessed.
func mergeGroups(groups []entities.Group, ids []string) ([]entities.Group, error) {
	if len(ids) < 2 {
		return nil, fmt.Errorf("%w: merge needs at least 2 groups, got %d", ErrInvalidOperation, len(ids))
	}

	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		if selected[id] {
			return nil, fmt.Errorf("%w: duplicate group id %s in merge selection", ErrInvalidOperation, id)
		}
		selected[id] = true
	}

	merged := entities.Group{
		ID:                     uuid.NewString(),
		UrgencyLevel:           entities.UrgencyNormal,
		DesignApprovalRequired: true,
	}
	var names, instructions []string
	insertAt := -1
	found := 0

	for i, g := range groups {
		if !selected[g.ID] {
			continue
		}
		found++
		if insertAt == -1 {
			insertAt = i
		}
		names = append(names, g.Name)
		if s := strings.TrimSpace(g.SpecialInstructions); s != "" {
			instructions = append(instructions, s)
		}
		if g.ExpectedProductionDays > merged.ExpectedProductionDays {
			merged.ExpectedProductionDays = g.ExpectedProductionDays
		}
		// Duplicates across inputs are not expected, but de-duplicate by
		// line item id if they show up.
		for _, it := range g.Items {
			if !merged.HasItem(it.ID) {
				merged.Items = append(merged.Items, it)
			}
		}
	}
	if found != len(ids) {
		return nil, fmt.Errorf("%w: merge selection references unknown group ids", ErrInvalidOperation)
	}

	merged.Name = fmt.Sprintf("Merged: %s", strings.Join(names, " + "))
	merged.SpecialInstructions = strings.Join(instructions, "; ")
	merged.RecomputeValue()

	out := make([]entities.Group, 0, len(groups)-len(ids)+1)
	for i, g := range groups {
		if i == insertAt {
			out = append(out, merged)
		}
		if selected[g.ID] {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// splitGroup explodes a multi-item group into one singleton group per item,
// each inheriting the parent's urgency, days, approval flag and instructions.
func splitGroup(groups []entities.Group, id string) ([]entities.Group, error) {
	idx := indexOfGroup(groups, id)
	if idx == -1 {
		return nil, fmt.Errorf("%w: group %s not found", ErrInvalidOperation, id)
	}
	parent := groups[idx]
	if len(parent.Items) <= 1 {
		return nil, fmt.Errorf("%w: group %s has %d item(s), nothing to split", ErrInvalidOperation, id, len(parent.Items))
	}

	singletons := make([]entities.Group, 0, len(parent.Items))
	for _, it := range parent.Items {
		singletons = append(singletons, entities.Group{
			ID:                     uuid.NewString(),
			Name:                   it.ProductName,
			Items:                  []entities.LineItem{it},
			UrgencyLevel:           parent.UrgencyLevel,
			ExpectedProductionDays: parent.ExpectedProductionDays,
			DesignApprovalRequired: parent.DesignApprovalRequired,
			SpecialInstructions:    parent.SpecialInstructions,
			EstimatedValue:         it.TotalPrice,
		})
	}

	out := make([]entities.Group, 0, len(groups)-1+len(singletons))
	out = append(out, groups[:idx]...)
	out = append(out, singletons...)
	out = append(out, groups[idx+1:]...)
	return out, nil
}

// duplicateGroup appends a copy of the group with a fresh id and the same
// item references. This intentionally breaks the partition invariant; the
// session records it as an exception the caller must acknowledge.
func duplicateGroup(groups []entities.Group, id string) ([]entities.Group, error) {
	idx := indexOfGroup(groups, id)
	if idx == -1 {
		return nil, fmt.Errorf("%w: group %s not found", ErrInvalidOperation, id)
	}
	src := groups[idx]

	dup := src
	dup.ID = uuid.NewString()
	dup.Name = src.Name + " (copy)"
	dup.Items = make([]entities.LineItem, len(src.Items))
	copy(dup.Items, src.Items)

	out := make([]entities.Group, 0, len(groups)+1)
	out = append(out, groups...)
	out = append(out, dup)
	return out, nil
}

// addGroup appends an empty group with safe defaults. Empty groups are
// rejected by validation until items are assigned to them.
func addGroup(groups []entities.Group) []entities.Group {
	out := make([]entities.Group, 0, len(groups)+1)
	out = append(out, groups...)
	out = append(out, entities.Group{
		ID:                     uuid.NewString(),
		Name:                   fmt.Sprintf("Group %d", len(groups)+1),
		Items:                  []entities.LineItem{},
		UrgencyLevel:           entities.UrgencyNormal,
		ExpectedProductionDays: defaultProductionDays,
		DesignApprovalRequired: true,
	})
	return out
}

// removeGroup drops the group. Items are not redistributed; validation will
// report the coverage gap until the caller regenerates or re-partitions.
func removeGroup(groups []entities.Group, id string) ([]entities.Group, error) {
	if len(groups) <= 1 {
		return nil, fmt.Errorf("%w: cannot remove the last remaining group", ErrInvalidOperation)
	}
	idx := indexOfGroup(groups, id)
	if idx == -1 {
		return nil, fmt.Errorf("%w: group %s not found", ErrInvalidOperation, id)
	}
	out := make([]entities.Group, 0, len(groups)-1)
	out = append(out, groups[:idx]...)
	out = append(out, groups[idx+1:]...)
	return out, nil
}

// GroupPatch is a partial field update for one group. Nil means "leave as is".
// EstimatedValue and Items are structural/derived and cannot be patched.
type GroupPatch struct {
	Name                   *string
	UrgencyLevel           *entities.UrgencyLevel
	ExpectedProductionDays *int
	DesignApprovalRequired *bool
	SpecialInstructions    *string
}

func updateGroup(groups []entities.Group, id string, patch GroupPatch) ([]entities.Group, error) {
	idx := indexOfGroup(groups, id)
	if idx == -1 {
		return nil, fmt.Errorf("%w: group %s not found", ErrInvalidOperation, id)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: group name cannot be blank", ErrInvalidOperation)
	}
	if patch.UrgencyLevel != nil && !patch.UrgencyLevel.Valid() {
		return nil, fmt.Errorf("%w: unknown urgency level %q", ErrInvalidOperation, *patch.UrgencyLevel)
	}
	if patch.ExpectedProductionDays != nil && *patch.ExpectedProductionDays < 1 {
		return nil, fmt.Errorf("%w: expected production days must be >= 1", ErrInvalidOperation)
	}

	out := make([]entities.Group, len(groups))
	copy(out, groups)
	g := &out[idx]
	if patch.Name != nil {
		g.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.UrgencyLevel != nil {
		g.UrgencyLevel = *patch.UrgencyLevel
	}
	if patch.ExpectedProductionDays != nil {
		g.ExpectedProductionDays = *patch.ExpectedProductionDays
	}
	if patch.DesignApprovalRequired != nil {
		g.DesignApprovalRequired = *patch.DesignApprovalRequired
	}
	if patch.SpecialInstructions != nil {
		g.SpecialInstructions = *patch.SpecialInstructions
	}
	return out, nil
}

func indexOfGroup(groups []entities.Group, id string) int {
	for i, g := range groups {
		if g.ID == id {
			return i
		}
	}
	return -1
}
