package feed

import (
	groupPort "plume/internal/ports/group"
	postPort "plume/internal/ports/post"
)

// PageInfo describes one page of a paginated listing. The requested page
// number is clamped, so Page always names the page actually returned.
type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

type Page struct {
	Posts    []postPort.PostDTO `json:"posts"`
	PageInfo PageInfo           `json:"page_info"`
}

// GroupPage is a group's page of posts together with the group record.
type GroupPage struct {
	Group groupPort.GroupDTO `json:"group"`
	Page
}

// ProfilePage carries whether the requester follows the profile's owner.
type ProfilePage struct {
	Author    string `json:"author"`
	Following bool   `json:"following"`
	Page
}
