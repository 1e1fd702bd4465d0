package bijoy_test

import (
	"fmt"

	"github.com/npillmayer/bijoy"
)

func ExampleToUnicode() {
	fmt.Println(bijoy.ToUnicode("Avgvi †mvbvi evsjv"))
	// Output: আমার সোনার বাংলা
}

func ExampleToBijoy() {
	fmt.Println(bijoy.ToBijoy("ধর্ম"))
	// Output: ag©
}

func ExampleConvertMixed() {
	fmt.Println(bijoy.ConvertMixed("1971 mv‡j Avgiv"))
	// Output: 1971 সালে আমরা
}
