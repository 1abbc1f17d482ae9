package term

import "src.conedit.dev/pkg/tt"

var Args = tt.Args
