package gateway

// Progress is a global activity indicator toggled around requests.
type Progress interface {
	Start()
	Done()
}

type nopProgress struct{}

func (nopProgress) Start() {}
func (nopProgress) Done()  {}
