// Package tierlist defines the ranked tier table a FlowList workspace is
// rebuilt from, plus the manifest format used to persist custom tables.
package tierlist

import (
	"fmt"
	"strings"
)

// PlaceholderTask is the body written into every restored folder file. The
// trailing newline is deliberately absent; FlowList imports the bare line as
// a single unchecked task.
const PlaceholderTask = "- [ ] Placeholder task"

// Tier is one ranked grouping of folders. Name becomes the top-level
// directory inside a restored archive and Folders keep declaration order.
type Tier struct {
	Name    string   `json:"tier" yaml:"tier"`
	Folders []string `json:"folders" yaml:"folders"`
}

// Clone returns a deep copy of the tier.
func (t Tier) Clone() Tier {
	clone := Tier{Name: t.Name}
	if len(t.Folders) > 0 {
		clone.Folders = make([]string, len(t.Folders))
		copy(clone.Folders, t.Folders)
	}
	return clone
}

// Table is an ordered set of tiers. Every operation that walks a table does
// so in declaration order, tiers first, folders within each tier second.
type Table []Tier

// Default returns the canonical FlowList table. Callers own the returned
// value; mutating it never affects later calls.
func Default() Table {
	return Table{
		{Name: "S", Folders: []string{
			"Learn Earn",
			"Productivity",
			"Outreach Playbook",
			"Motivation",
			"Flow",
			"The Grand Slam Offer",
			"Business Research",
			"Financial Urgent",
			"Work",
			"Finances",
		}},
		{Name: "A", Folders: []string{
			"Next-Level Acceleration",
			"Tech Projects",
			"Game Development",
			"Lead Generation",
			"Research",
			"Relationship",
			"Content Creation",
		}},
		{Name: "B", Folders: []string{
			"Website",
			"Domain Acquisition",
			"Podcasting",
			"BrandKit",
			"Productized Service",
			"Household & Maintenance",
			"Funnel & Tracking",
			"Health & Wellness",
			"Community Building",
			"Operations",
			"Personal Branding",
			"Reflection",
			"Personal Events",
			"Product Development",
		}},
		{Name: "C", Folders: []string{
			"Fitness",
			"Wellness",
			"Streaming Setup",
			"App Mafia",
			"Lightmark.ai",
			"Social Media",
			"Code",
			"Luma Event",
			"Dental & Medical",
			"SEO",
			"Indiehacking",
			"Design",
			"SelfCare",
			"Content Strategy",
		}},
		{Name: "D", Folders: []string{
			"Travel",
			"Content Curation",
			"Improv Setup",
			"Townhall",
		}},
		// "None" and "Ns" are distinct folders in exported workspaces and
		// must stay spelled exactly as FlowList spells them.
		{Name: "F", Folders: []string{
			"None",
			"Shopping & Errands",
			"NS Projects & Social",
			"Content Consumption",
			"Leisure",
			"Ns",
		}},
	}
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	if len(t) == 0 {
		return nil
	}
	out := make(Table, len(t))
	for i, tier := range t {
		out[i] = tier.Clone()
	}
	return out
}

// Validate ensures the table can be materialized into an archive: at least
// one tier, at least one folder per tier, no path separators in names, and
// no two folders resolving to the same entry path.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("tierlist: at least one tier is required")
	}
	seen := map[string]struct{}{}
	for idx, tier := range t {
		if tier.Name == "" {
			return fmt.Errorf("tierlist: tier[%d]: name is required", idx)
		}
		if strings.ContainsAny(tier.Name, `/\`) {
			return fmt.Errorf("tierlist: tier %s: name must not contain path separators", tier.Name)
		}
		if len(tier.Folders) == 0 {
			return fmt.Errorf("tierlist: tier %s: at least one folder is required", tier.Name)
		}
		for jdx, folder := range tier.Folders {
			if folder == "" {
				return fmt.Errorf("tierlist: tier %s folder[%d]: name is required", tier.Name, jdx)
			}
			if strings.ContainsAny(folder, `/\`) {
				return fmt.Errorf("tierlist: tier %s folder %s: name must not contain path separators", tier.Name, folder)
			}
			path := EntryPath(tier.Name, folder)
			if _, exists := seen[path]; exists {
				return fmt.Errorf("tierlist: duplicate entry path %s", path)
			}
			seen[path] = struct{}{}
		}
	}
	return nil
}

// TierNames returns the tier names in declaration order.
func (t Table) TierNames() []string {
	names := make([]string, 0, len(t))
	for _, tier := range t {
		names = append(names, tier.Name)
	}
	return names
}

// FolderCount returns the total number of folders across all tiers, which is
// also the number of entries a restored archive will contain.
func (t Table) FolderCount() int {
	total := 0
	for _, tier := range t {
		total += len(tier.Folders)
	}
	return total
}

// Entry is one file a restored archive contains.
type Entry struct {
	Path    string
	Content string
}

// Entries expands the table into archive entries in declaration order.
func (t Table) Entries() []Entry {
	entries := make([]Entry, 0, t.FolderCount())
	for _, tier := range t {
		for _, folder := range tier.Folders {
			entries = append(entries, Entry{
				Path:    EntryPath(tier.Name, folder),
				Content: PlaceholderTask,
			})
		}
	}
	return entries
}

// EntryPath joins a tier and folder into an archive entry path. Entry paths
// always use forward slashes regardless of host OS, and names are matched
// case-sensitively.
func EntryPath(tier, folder string) string {
	return fmt.Sprintf("%s/%s.txt", tier, folder)
}
