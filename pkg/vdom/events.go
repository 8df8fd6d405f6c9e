package vdom

// Payload types delivered to handlers. Field names follow the snake_case keys
// written by the remote renderer; absent keys decode to zero values.

// TargetElement describes the DOM element an event was dispatched to.
type TargetElement struct {
	TagName      string `json:"tag_name"`
	ClientHeight int    `json:"client_height"`
	ClientWidth  int    `json:"client_width"`
	ClientLeft   int    `json:"client_left"`
	ClientTop    int    `json:"client_top"`
	ScrollHeight int    `json:"scroll_height"`
	ScrollWidth  int    `json:"scroll_width"`
	ScrollLeft   int    `json:"scroll_left"`
	ScrollTop    int    `json:"scroll_top"`
}

// GenericEvent is the payload of events that carry nothing beyond a target.
type GenericEvent struct {
	Target *TargetElement `json:"target"`
}

// Modifiers holds the modifier key state shared by input device events.
type Modifiers struct {
	AltKey   bool `json:"alt_key"`
	CtrlKey  bool `json:"ctrl_key"`
	MetaKey  bool `json:"meta_key"`
	ShiftKey bool `json:"shift_key"`
}

// Pointer holds the coordinates shared by mouse-like events.
type Pointer struct {
	Button    int `json:"button"`
	Buttons   int `json:"buttons"`
	ClientX   int `json:"client_x"`
	ClientY   int `json:"client_y"`
	MovementX int `json:"movement_x"`
	MovementY int `json:"movement_y"`
	OffsetX   int `json:"offset_x"`
	OffsetY   int `json:"offset_y"`
	PageX     int `json:"page_x"`
	PageY     int `json:"page_y"`
	ScreenX   int `json:"screen_x"`
	ScreenY   int `json:"screen_y"`
	X         int `json:"x"`
	Y         int `json:"y"`
}

type MouseEvent struct {
	Modifiers
	Pointer
	RelatedTarget *TargetElement `json:"related_target"`
	Target        *TargetElement `json:"target"`
}

type DragEvent struct {
	Modifiers
	Pointer
	RelatedTarget *TargetElement `json:"related_target"`
	Target        *TargetElement `json:"target"`
}

type PointerEvent struct {
	Modifiers
	Pointer
	Height        float64        `json:"height"`
	Width         float64        `json:"width"`
	IsPrimary     bool           `json:"is_primary"`
	PointerID     int            `json:"pointer_id"`
	PointerType   string         `json:"pointer_type"`
	Pressure      float64        `json:"pressure"`
	TiltX         int            `json:"tilt_x"`
	TiltY         int            `json:"tilt_y"`
	Twist         int            `json:"twist"`
	RelatedTarget *TargetElement `json:"related_target"`
	Target        *TargetElement `json:"target"`
}

type WheelEvent struct {
	Modifiers
	Pointer
	DeltaMode int            `json:"delta_mode"`
	DeltaX    float64        `json:"delta_x"`
	DeltaY    float64        `json:"delta_y"`
	DeltaZ    float64        `json:"delta_z"`
	Target    *TargetElement `json:"target"`
}

type FocusEvent struct {
	RelatedTarget *TargetElement `json:"related_target"`
	Target        *TargetElement `json:"target"`
}

type KeyboardEvent struct {
	Modifiers
	CharCode int            `json:"char_code"`
	Code     string         `json:"code"`
	Key      string         `json:"key"`
	KeyCode  int            `json:"key_code"`
	Location int            `json:"location"`
	Repeat   bool           `json:"repeat"`
	Target   *TargetElement `json:"target"`
}

type InputEvent struct {
	Data        string         `json:"data"`
	InputType   string         `json:"input_type"`
	IsComposing bool           `json:"is_composing"`
	Target      *TargetElement `json:"target"`
}

type ProgressEvent struct {
	LengthComputable bool           `json:"length_computable"`
	Loaded           int64          `json:"loaded"`
	Total            int64          `json:"total"`
	Target           *TargetElement `json:"target"`
}

type SubmitEvent struct {
	Submitter *TargetElement `json:"submitter"`
	Target    *TargetElement `json:"target"`
}

type AnimationEvent struct {
	AnimationName string         `json:"animation_name"`
	ElapsedTime   float64        `json:"elapsed_time"`
	PseudoElement string         `json:"pseudo_element"`
	Target        *TargetElement `json:"target"`
}

type TransitionEvent struct {
	ElapsedTime   float64        `json:"elapsed_time"`
	PseudoElement string         `json:"pseudo_element"`
	PropertyName  string         `json:"property_name"`
	Target        *TargetElement `json:"target"`
}

// Touch is one contact point of a TouchEvent.
type Touch struct {
	Identifier    int            `json:"identifier"`
	ClientX       int            `json:"client_x"`
	ClientY       int            `json:"client_y"`
	PageX         int            `json:"page_x"`
	PageY         int            `json:"page_y"`
	RadiusX       float64        `json:"radius_x"`
	RadiusY       float64        `json:"radius_y"`
	RotationAngle float64        `json:"rotation_angle"`
	ScreenX       int            `json:"screen_x"`
	ScreenY       int            `json:"screen_y"`
	Target        *TargetElement `json:"target"`
}

type TouchEvent struct {
	Modifiers
	ChangedTouches []Touch        `json:"changed_touches"`
	TargetTouches  []Touch        `json:"target_touches"`
	Touches        []Touch        `json:"touches"`
	Target         *TargetElement `json:"target"`
}
