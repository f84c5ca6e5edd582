package dto

// ReceiveMode selects the receive-merchandise sub-path. The caller's
// declared intent governs which stock operation runs; there is no
// auto-detection between the two.
type ReceiveMode string

const (
	ModeNewProduct      ReceiveMode = "new_product"
	ModeExistingProduct ReceiveMode = "existing_product"
)

type ReceiveInput struct {
	Mode     ReceiveMode
	Name     string
	Quantity int64
}

type ReceiveResult struct {
	ProductID   int64
	ProductName string
	NewQuantity int64
	Created     bool
}
