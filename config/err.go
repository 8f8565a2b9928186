package config

import (
	"github.com/ezrec/regvm/translate"
)

var f = translate.From
