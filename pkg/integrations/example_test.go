package integrations_test

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/memelab/pkg/integrations"
)

func ExampleWithMemeSuffix() {
	fmt.Println(integrations.WithMemeSuffix("distracted boyfriend"))
	fmt.Println(integrations.WithMemeSuffix("  cat  "))
	// Output:
	// distracted boyfriend meme
	// cat meme
}

func ExampleFlexInt() {
	// Some providers send dimensions as strings
	var dims struct {
		Width  integrations.FlexInt `json:"width"`
		Height integrations.FlexInt `json:"height"`
	}
	_ = json.Unmarshal([]byte(`{"width":"480","height":270}`), &dims)
	fmt.Println(dims.Width, dims.Height)
	// Output:
	// 480 270
}
