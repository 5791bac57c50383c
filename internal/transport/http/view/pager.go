package view

import (
	"net/url"
	"strconv"

	"tripboard/internal/domain/paging"
)

const (
	prevLabel     = "«"
	nextLabel     = "»"
	ellipsisLabel = "..."
)

// PageLink is one control of the page bar.
type PageLink struct {
	Label    string
	Page     int
	Href     string
	Active   bool
	Disabled bool
	Ellipsis bool
}

// Controls lays out the page bar for w: «, an optional "1 ..." lead, the
// window, an optional "... last" tail, then ». basePath receives ?page=N.
func Controls(w paging.Window, basePath string) []PageLink {
	if w.TotalPages <= 0 {
		return nil
	}
	links := make([]PageLink, 0, w.Width()+6)
	links = append(links, PageLink{
		Label:    prevLabel,
		Page:     w.PrevPage(),
		Href:     pageHref(basePath, w.PrevPage()),
		Disabled: !w.HasPrev,
	})

	if w.ShowLeadingEllipsis {
		links = append(links,
			numberLink(basePath, 1, w.CurrentPage),
			PageLink{Label: ellipsisLabel, Ellipsis: true},
		)
	}
	for _, p := range w.Pages() {
		links = append(links, numberLink(basePath, p, w.CurrentPage))
	}
	if w.ShowTrailingEllipsis {
		links = append(links,
			PageLink{Label: ellipsisLabel, Ellipsis: true},
			numberLink(basePath, w.TotalPages, w.CurrentPage),
		)
	}

	links = append(links, PageLink{
		Label:    nextLabel,
		Page:     w.NextPage(),
		Href:     pageHref(basePath, w.NextPage()),
		Disabled: !w.HasNext,
	})
	return links
}

func numberLink(basePath string, page, current int) PageLink {
	return PageLink{
		Label:  strconv.Itoa(page),
		Page:   page,
		Href:   pageHref(basePath, page),
		Active: page == current,
	}
}

func pageHref(basePath string, page int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	return basePath + "?" + q.Encode()
}
