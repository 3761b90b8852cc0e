package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/pitchside/drillkit/internal/models"
)

// DrillPayload is the wire shape of a drill. Its ID is the backend identity.
type DrillPayload struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Skill         string   `json:"skill,omitempty"`
	SubSkills     []string `json:"sub_skills,omitempty"`
	Sets          int      `json:"sets,omitempty"`
	Reps          int      `json:"reps,omitempty"`
	Duration      int      `json:"duration,omitempty"`
	Description   string   `json:"description,omitempty"`
	Instructions  []string `json:"instructions,omitempty"`
	Tips          []string `json:"tips,omitempty"`
	Equipment     []string `json:"equipment,omitempty"`
	TrainingStyle string   `json:"training_style,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	VideoURL      string   `json:"video_url,omitempty"`
}

// Model hydrates a catalog drill from the payload. The local identity is
// freshly generated; the backend identity is preserved on the drill.
func (p DrillPayload) Model() models.Drill {
	return models.Drill{
		ID:            uuid.New().String(),
		BackendID:     p.ID,
		Title:         p.Title,
		Skill:         p.Skill,
		SubSkills:     p.SubSkills,
		Sets:          p.Sets,
		Reps:          p.Reps,
		Duration:      p.Duration,
		Description:   p.Description,
		Instructions:  p.Instructions,
		Tips:          p.Tips,
		Equipment:     p.Equipment,
		TrainingStyle: p.TrainingStyle,
		Difficulty:    p.Difficulty,
		VideoURL:      p.VideoURL,
	}
}

// GroupPayload is the wire shape of a drill group.
type GroupPayload struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	IsLiked     bool           `json:"is_liked"`
	Drills      []DrillPayload `json:"drills"`
}

// GetAllDrillGroups fetches every group owned by the authenticated user.
func (c *Client) GetAllDrillGroups(ctx context.Context) ([]GroupPayload, error) {
	var groups []GroupPayload
	if _, err := c.do(ctx, http.MethodGet, "/groups", nil, &groups); err != nil {
		return nil, fmt.Errorf("fetch drill groups: %w", err)
	}
	return groups, nil
}

type createGroupRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	DrillIDs    []string `json:"drill_ids"`
	IsLiked     bool     `json:"is_liked"`
}

type createGroupResponse struct {
	ID string `json:"id"`
}

// CreateGroup creates a group server-side and returns its backend identity.
func (c *Client) CreateGroup(ctx context.Context, name, description string, drillIDs []string, isLiked bool) (string, error) {
	req := createGroupRequest{
		Name:        name,
		Description: description,
		DrillIDs:    drillIDs,
		IsLiked:     isLiked,
	}
	var resp createGroupResponse
	if _, err := c.do(ctx, http.MethodPost, "/groups", req, &resp); err != nil {
		return "", fmt.Errorf("create group: %w", err)
	}
	return resp.ID, nil
}

// DeleteGroup removes a group by its backend identity.
func (c *Client) DeleteGroup(ctx context.Context, groupID string) error {
	if groupID == "" {
		return ErrNoBackendID
	}
	if _, err := c.do(ctx, http.MethodDelete, "/groups/"+url.PathEscape(groupID), nil, nil); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}

type addDrillRequest struct {
	DrillID string `json:"drill_id"`
}

// AddDrillToGroup appends a drill to a group, both by backend identity.
func (c *Client) AddDrillToGroup(ctx context.Context, groupID, drillID string) error {
	if groupID == "" || drillID == "" {
		return ErrNoBackendID
	}
	path := "/groups/" + url.PathEscape(groupID) + "/drills"
	if _, err := c.do(ctx, http.MethodPost, path, addDrillRequest{DrillID: drillID}, nil); err != nil {
		return fmt.Errorf("add drill to group: %w", err)
	}
	return nil
}

// RemoveDrillFromGroup removes a drill from a group, both by backend identity.
func (c *Client) RemoveDrillFromGroup(ctx context.Context, groupID, drillID string) error {
	if groupID == "" || drillID == "" {
		return ErrNoBackendID
	}
	path := "/groups/" + url.PathEscape(groupID) + "/drills/" + url.PathEscape(drillID)
	if _, err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("remove drill from group: %w", err)
	}
	return nil
}

// ToggleDrillLike flips the like state of a drill server-side. Rapid
// double-taps on the same drill are collapsed by the transport debounce.
func (c *Client) ToggleDrillLike(ctx context.Context, drillID string) error {
	if drillID == "" {
		return ErrNoBackendID
	}
	path := "/drills/" + url.PathEscape(drillID) + "/like"
	_, err := c.do(ctx, http.MethodPost, path, nil, nil,
		WithDebounce("toggle-like:"+drillID, 0))
	if err != nil {
		return fmt.Errorf("toggle drill like: %w", err)
	}
	return nil
}

type addMultipleRequest struct {
	GroupID  string   `json:"group_id,omitempty"`
	DrillIDs []string `json:"drill_ids"`
	IsLiked  bool     `json:"is_liked"`
}

// AddMultipleDrillsToAnyGroup bulk-adds drills to a group. An empty groupID
// lets the backend create (or resolve) the target group; the group's backend
// identity is returned either way.
func (c *Client) AddMultipleDrillsToAnyGroup(ctx context.Context, groupID string, drillIDs []string, isLiked bool) (string, error) {
	req := addMultipleRequest{GroupID: groupID, DrillIDs: drillIDs, IsLiked: isLiked}
	var resp createGroupResponse
	if _, err := c.do(ctx, http.MethodPost, "/groups/drills/batch", req, &resp); err != nil {
		return "", fmt.Errorf("add drills to group: %w", err)
	}
	return resp.ID, nil
}

// GetAllDrills fetches the full drill catalog.
func (c *Client) GetAllDrills(ctx context.Context) ([]DrillPayload, error) {
	var drills []DrillPayload
	if _, err := c.do(ctx, http.MethodGet, "/drills", nil, &drills); err != nil {
		return nil, fmt.Errorf("fetch drill catalog: %w", err)
	}
	return drills, nil
}
