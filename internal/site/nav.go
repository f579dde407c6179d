package site

import "strings"

// NavItem is a menu entry from the site copy.
type NavItem struct {
	Label    string    `yaml:"label"`
	Href     string    `yaml:"href"`
	Children []NavItem `yaml:"children,omitempty"`
}

// NavLink is a menu entry resolved against the current path.
type NavLink struct {
	Label    string
	Href     string
	Active   bool
	Children []NavLink
}

// Crumb is one breadcrumb step. The last crumb has no Href.
type Crumb struct {
	Label string
	Href  string
}

// Navigation marks the entries that match path. A parent is active when
// any of its children is.
func Navigation(items []NavItem, path string) []NavLink {
	links := make([]NavLink, 0, len(items))
	for _, item := range items {
		link := NavLink{
			Label:  item.Label,
			Href:   item.Href,
			Active: NavActive(path, item.Href),
		}
		for _, child := range item.Children {
			c := NavLink{Label: child.Label, Href: child.Href, Active: NavActive(path, child.Href)}
			if c.Active {
				link.Active = true
			}
			link.Children = append(link.Children, c)
		}
		links = append(links, link)
	}
	return links
}

// NavActive reports whether current should highlight target. Home matches
// only itself; other targets also match their sub-paths.
func NavActive(current, target string) bool {
	current = normalizeRoute(current)
	target = normalizeRoute(target)

	if target == "/" {
		return current == "/"
	}
	if current == target {
		return true
	}
	return strings.HasPrefix(current, target+"/")
}

// Breadcrumbs walks the menu to path and returns the trail below home.
func Breadcrumbs(items []NavItem, path string) []Crumb {
	path = normalizeRoute(path)
	for _, item := range items {
		if normalizeRoute(item.Href) == path && path != "/" {
			return []Crumb{{Label: item.Label}}
		}
		for _, child := range item.Children {
			if normalizeRoute(child.Href) == path {
				return []Crumb{
					{Label: item.Label, Href: item.Href},
					{Label: child.Label},
				}
			}
		}
	}
	return nil
}

func normalizeRoute(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
