package event

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Descriptor is the storable form of a domain event: the body serialized to
// JSON plus the metadata needed to route it back to a listener.
type Descriptor struct {
	ID         int64
	Kind       string
	Body       string
	OccurredAt time.Time
}

func NewDescriptor(kind string, body string, occurredAt time.Time) *Descriptor {
	return &Descriptor{Kind: kind, Body: body, OccurredAt: occurredAt}
}

// FromEvent flattens e into a Descriptor, serializing its body to JSON.
func FromEvent(e Event) (*Descriptor, error) {
	if e == nil {
		return nil, ErrEventNil
	}
	data, err := jsoniter.Marshal(e.Body())
	if err != nil {
		return nil, err
	}
	return NewDescriptor(e.Kind(), string(data), e.When()), nil
}

// Unmarshal decodes the stored body into target.
func (d *Descriptor) Unmarshal(target any) error {
	return jsoniter.Unmarshal([]byte(d.Body), target)
}
