package cli

import (
	"context"
	"fmt"
	"strconv"
)

// ShowHistory prints the lookup history, oldest first. In delete mode each
// entry carries a checkbox showing its selection state.
func (a *App) ShowHistory(ctx context.Context) error {
	entries := a.history.List()
	if a.deleteMode {
		// The selection must never reference an entry history no longer has.
		a.selection.Prune(entries)
	}
	if len(entries) == 0 {
		printlnFn("History is empty")
		return nil
	}

	for i, ip := range entries {
		if a.deleteMode {
			mark := " "
			if a.selection.Has(ip) {
				mark = "x"
			}
			printlnFn(fmt.Sprintf("%3d [%s] %s", i+1, mark, ip))
		} else {
			printlnFn(fmt.Sprintf("%3d %s", i+1, ip))
		}
	}
	return nil
}

// ToggleDeleteMode enters or leaves delete mode. Entering starts with nothing
// selected; leaving discards any pending selection.
func (a *App) ToggleDeleteMode(ctx context.Context) error {
	a.deleteMode = !a.deleteMode
	a.selection.Clear()
	if a.deleteMode {
		printlnFn("Delete mode on. Use select <n> to mark entries, delete to remove them.")
	} else {
		printlnFn("Delete mode off")
	}
	return nil
}

// Select acts on the n-th history entry (1-based, as printed by ShowHistory).
// In delete mode it toggles the entry's selection; outside delete mode it
// re-runs the lookup, which moves the map without duplicating the entry.
func (a *App) Select(ctx context.Context, arg string) error {
	entries := a.history.List()

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(entries) {
		printlnFn("No such history entry:", arg)
		return fmt.Errorf("invalid history index %q", arg)
	}
	ip := entries[n-1]

	if !a.deleteMode {
		return a.Lookup(ctx, ip)
	}

	a.selection.Toggle(ip)
	return a.ShowHistory(ctx)
}

// DeleteSelected removes the selected entries from history in one step and
// leaves delete mode. With nothing selected it is a no-op.
func (a *App) DeleteSelected(ctx context.Context) error {
	if !a.deleteMode {
		printlnFn("Not in delete mode")
		return nil
	}
	if a.selection.Count() == 0 {
		printlnFn("Nothing selected")
		return nil
	}

	survivors, err := a.history.Remove(ctx, a.selection.Selected())
	if err != nil {
		a.notices.Show("Error deleting history")
		printlnFn(a.notices.Current())
		return err
	}

	a.selection.Clear()
	a.deleteMode = false
	printlnFn(fmt.Sprintf("Deleted. %d entries remain.", len(survivors)))
	return nil
}
