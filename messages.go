package lspwire

import "fmt"

// MessageType classifies window messages.
type MessageType int

const (
	MessageTypeError   MessageType = 1
	MessageTypeWarning MessageType = 2
	MessageTypeInfo    MessageType = 3
	MessageTypeLog     MessageType = 4
)

var messageTypeNames = map[MessageType]string{
	MessageTypeError:   "Error",
	MessageTypeWarning: "Warning",
	MessageTypeInfo:    "Info",
	MessageTypeLog:     "Log",
}

// String returns the variant name.
func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MessageType(%d)", int(t))
}

// UnmarshalJSON decodes a MessageType, rejecting unknown codes.
func (t *MessageType) UnmarshalJSON(data []byte) error {
	n, err := decodeEnum(data, "MessageType", func(n int) bool {
		_, ok := messageTypeNames[MessageType(n)]
		return ok
	})
	if err != nil {
		return err
	}
	*t = MessageType(n)
	return nil
}

// ShowMessageParams are parameters for window/showMessage.
type ShowMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// UnmarshalJSON decodes a ShowMessageParams.
func (p *ShowMessageParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "ShowMessageParams")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "ShowMessageParams", "type", &p.Type); err != nil {
		return err
	}
	message, err := reqString(obj, "ShowMessageParams", "message")
	if err != nil {
		return err
	}
	p.Message = message
	return nil
}

// MessageActionItem is a message action presented to the user, with a short
// title like "Retry" or "Open Log".
type MessageActionItem struct {
	Title string `json:"title"`
}

// UnmarshalJSON decodes a MessageActionItem.
func (m *MessageActionItem) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "MessageActionItem")
	if err != nil {
		return err
	}
	title, err := reqString(obj, "MessageActionItem", "title")
	if err != nil {
		return err
	}
	m.Title = title
	return nil
}

// ShowMessageRequestParams are parameters for window/showMessageRequest.
// Actions are omitted from the wire when empty.
type ShowMessageRequestParams struct {
	Type    MessageType         `json:"type"`
	Message string              `json:"message"`
	Actions []MessageActionItem `json:"actions,omitempty"`
}

// UnmarshalJSON decodes a ShowMessageRequestParams.
func (p *ShowMessageRequestParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "ShowMessageRequestParams")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "ShowMessageRequestParams", "type", &p.Type); err != nil {
		return err
	}
	message, err := reqString(obj, "ShowMessageRequestParams", "message")
	if err != nil {
		return err
	}
	actions, err := decodeOptArray[MessageActionItem](obj, "ShowMessageRequestParams", "actions")
	if err != nil {
		return err
	}
	p.Message = message
	p.Actions = actions
	return nil
}

// LogMessageParams are parameters for window/logMessage.
type LogMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// UnmarshalJSON decodes a LogMessageParams.
func (p *LogMessageParams) UnmarshalJSON(data []byte) error {
	obj, err := parseObject(data, "LogMessageParams")
	if err != nil {
		return err
	}
	if err := decodeField(obj, "LogMessageParams", "type", &p.Type); err != nil {
		return err
	}
	message, err := reqString(obj, "LogMessageParams", "message")
	if err != nil {
		return err
	}
	p.Message = message
	return nil
}
