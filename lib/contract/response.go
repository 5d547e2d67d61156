package contract

const (
	ActionInstantiate = "instantiate"
	ActionCreatePoll  = "create_poll"
	ActionVote        = "vote"
)

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Response struct {
	Attributes []Attribute `json:"attributes"`
}

func NewResponse() *Response {
	return &Response{Attributes: []Attribute{}}
}

func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// Action returns the value of the `action` attribute.
func (r *Response) Action() string {
	for _, a := range r.Attributes {
		if a.Key == "action" {
			return a.Value
		}
	}
	return ""
}
