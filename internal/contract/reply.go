package contract

import (
	"strconv"

	"github.com/alexanderramin/dotori/internal/checklist"
	"github.com/alexanderramin/dotori/internal/domain"
	"github.com/alexanderramin/dotori/internal/report"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type BlockType string

const (
	BlockText         BlockType = "text"
	BlockFacilityList BlockType = "facility_list"
	BlockMap          BlockType = "map"
	BlockCompare      BlockType = "compare"
	BlockActions      BlockType = "actions"
	BlockReport       BlockType = "report"
	BlockChecklist    BlockType = "checklist"
)

type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

type MapMarker struct {
	ID     string                `json:"id" yaml:"id"`
	Name   string                `json:"name" yaml:"name"`
	Lat    float64               `json:"lat" yaml:"lat"`
	Lng    float64               `json:"lng" yaml:"lng"`
	Status domain.FacilityStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

type ActionButton struct {
	ID      string `json:"id" yaml:"id"`
	Label   string `json:"label" yaml:"label"`
	Action  string `json:"action,omitempty" yaml:"action,omitempty"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`
}

// Block is one typed element of an assistant reply. Only the fields that
// belong to Type are populated.
type Block struct {
	Type       BlockType            `json:"type" yaml:"type"`
	Content    string               `json:"content,omitempty" yaml:"content,omitempty"`
	Facilities []domain.Facility    `json:"facilities,omitempty" yaml:"facilities,omitempty"`
	Center     *LatLng              `json:"center,omitempty" yaml:"center,omitempty"`
	Markers    []MapMarker          `json:"markers,omitempty" yaml:"markers,omitempty"`
	Criteria   []string             `json:"criteria,omitempty" yaml:"criteria,omitempty"`
	Buttons    []ActionButton       `json:"buttons,omitempty" yaml:"buttons,omitempty"`
	Report     *report.Report       `json:"report,omitempty" yaml:"-"`
	Checklist  *checklist.Checklist `json:"checklist,omitempty" yaml:"-"`
}

// Turn is one visible message of a conversation.
type Turn struct {
	Role    Role    `json:"role" yaml:"role"`
	Content string  `json:"content" yaml:"content"`
	Blocks  []Block `json:"blocks,omitempty" yaml:"blocks,omitempty"`
}

func NewTextBlock(content string) Block {
	return Block{Type: BlockText, Content: content}
}

func NewReportBlock(r *report.Report) Block {
	return Block{Type: BlockReport, Report: r}
}

func NewChecklistBlock(c *checklist.Checklist) Block {
	return Block{Type: BlockChecklist, Checklist: c}
}

// NewMapBlock builds a map block centred on the first facility.
func NewMapBlock(facilities []domain.Facility) Block {
	b := Block{Type: BlockMap, Markers: make([]MapMarker, 0, len(facilities))}
	for _, f := range facilities {
		b.Markers = append(b.Markers, MapMarker{ID: f.ID, Name: f.Name, Lat: f.Lat, Lng: f.Lng, Status: f.Status})
	}
	if len(facilities) > 0 {
		b.Center = &LatLng{Lat: facilities[0].Lat, Lng: facilities[0].Lng}
	}
	return b
}

// NewQuickReplyBlock renders prompts as outline action buttons.
func NewQuickReplyBlock(prompts []string) Block {
	b := Block{Type: BlockActions, Buttons: make([]ActionButton, 0, len(prompts))}
	for i, p := range prompts {
		b.Buttons = append(b.Buttons, ActionButton{
			ID:      "quick_" + strconv.Itoa(i+1),
			Label:   p,
			Variant: "outline",
		})
	}
	return b
}
