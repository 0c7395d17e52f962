package roster

import "context"

type Service interface {
	// Generate materializes one roster entry per employee per date in the
	// requested range from the schedule definition.
	Generate(ctx context.Context, req GenerateRosterRequest) (GenerateRosterResponse, error)
	ListEntries(ctx context.Context, filter ListEntriesFilter) ([]EntryResponse, error)
	OverrideEntry(ctx context.Context, req OverrideEntryRequest) (EntryResponse, error)
}
