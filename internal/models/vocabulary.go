package models

// Category is the kind of help a location marker offers or asks for.
// Values are stored with their display literal so existing rows stay readable.
type Category string

const (
	CategoryTransport     Category = "交通"
	CategoryLodging       Category = "住宿"
	CategorySupplies      Category = "物資"
	CategoryLabor         Category = "勞力"
	CategoryMedical       Category = "醫療"
	CategoryCommunication Category = "通訊"
	CategoryOther         Category = "其他"
)

// LocationStatus is empty on older rows; empty reads as Active.
type LocationStatus string

const (
	LocationActive    LocationStatus = "進行中"
	LocationCompleted LocationStatus = "已完成"
)

// ChannelType partitions the board into tabs.
type ChannelType string

const (
	ChannelHelpRequest  ChannelType = "求助"
	ChannelAnnouncement ChannelType = "快訊"
	ChannelNotice       ChannelType = "一般"
)

type ChannelStatus string

const (
	ChannelActive   ChannelStatus = "進行中"
	ChannelResolved ChannelStatus = "已解決"
	ChannelExpired  ChannelStatus = "已過期"
)

type Priority string

const (
	PriorityLow    Priority = "低"
	PriorityMedium Priority = "中"
	PriorityHigh   Priority = "高"
	PriorityUrgent Priority = "緊急"
)

// Style is the display metadata the map and board render for an enum value.
type Style struct {
	Color      string `json:"color"`
	Icon       string `json:"icon"`
	Background string `json:"bgColor"`
}

var categoryOrder = []Category{
	CategoryTransport,
	CategoryLodging,
	CategorySupplies,
	CategoryLabor,
	CategoryMedical,
	CategoryCommunication,
	CategoryOther,
}

var categoryStyles = map[Category]Style{
	CategoryTransport:     {Color: "#1976d2", Icon: "🚗", Background: "#e3f2fd"},
	CategoryLodging:       {Color: "#7b1fa2", Icon: "🏠", Background: "#f3e5f5"},
	CategorySupplies:      {Color: "#388e3c", Icon: "📦", Background: "#e8f5e8"},
	CategoryLabor:         {Color: "#f57c00", Icon: "👷", Background: "#fff3e0"},
	CategoryMedical:       {Color: "#d32f2f", Icon: "🏥", Background: "#ffebee"},
	CategoryCommunication: {Color: "#00695c", Icon: "📡", Background: "#e0f2f1"},
	CategoryOther:         {Color: "#616161", Icon: "📍", Background: "#f5f5f5"},
}

var priorityOrder = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

var priorityStyles = map[Priority]Style{
	PriorityLow:    {Color: "#4caf50", Icon: "🟢", Background: "#e8f5e8"},
	PriorityMedium: {Color: "#ff9800", Icon: "🟡", Background: "#fff3e0"},
	PriorityHigh:   {Color: "#f44336", Icon: "🔴", Background: "#ffebee"},
	PriorityUrgent: {Color: "#9c27b0", Icon: "🚨", Background: "#f3e5f5"},
}

var channelStatusOrder = []ChannelStatus{ChannelActive, ChannelResolved, ChannelExpired}

var channelStatusStyles = map[ChannelStatus]Style{
	ChannelActive:   {Color: "#1976d2", Icon: "🟢", Background: "#e3f2fd"},
	ChannelResolved: {Color: "#388e3c", Icon: "✅", Background: "#e8f5e8"},
	ChannelExpired:  {Color: "#616161", Icon: "⏰", Background: "#f5f5f5"},
}

var channelTypeOrder = []ChannelType{ChannelHelpRequest, ChannelAnnouncement, ChannelNotice}

// Categories returns the closed category set in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

func Priorities() []Priority {
	out := make([]Priority, len(priorityOrder))
	copy(out, priorityOrder)
	return out
}

func ChannelStatuses() []ChannelStatus {
	out := make([]ChannelStatus, len(channelStatusOrder))
	copy(out, channelStatusOrder)
	return out
}

func ChannelTypes() []ChannelType {
	out := make([]ChannelType, len(channelTypeOrder))
	copy(out, channelTypeOrder)
	return out
}

func (c Category) Valid() bool {
	_, ok := categoryStyles[c]
	return ok
}

// Style falls back to the Other style for unknown values.
func (c Category) Style() Style {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return categoryStyles[CategoryOther]
}

func (s LocationStatus) Valid() bool {
	return s == LocationActive || s == LocationCompleted
}

func (p Priority) Valid() bool {
	_, ok := priorityStyles[p]
	return ok
}

func (p Priority) Style() Style {
	return priorityStyles[p]
}

func (s ChannelStatus) Valid() bool {
	_, ok := channelStatusStyles[s]
	return ok
}

func (s ChannelStatus) Style() Style {
	return channelStatusStyles[s]
}

func (t ChannelType) Valid() bool {
	switch t {
	case ChannelHelpRequest, ChannelAnnouncement, ChannelNotice:
		return true
	}
	return false
}

var commonSupplies = []string{
	"飲用水", "食物", "毛毯", "手電筒", "電池", "急救包",
	"充電器", "行動電源", "口罩", "消毒用品", "雨衣", "雨鞋",
}

// CommonSupplies is the quick-pick list offered when adding supplies.
func CommonSupplies() []string {
	out := make([]string, len(commonSupplies))
	copy(out, commonSupplies)
	return out
}
