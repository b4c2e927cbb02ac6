package validator

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// EmailRule メールアドレスバリデーションルール
var EmailRule = []vd.Rule{
	is.EmailFormat,
	vd.RuneLength(3, 254),
}

// EmailRuleRequired メールアドレスバリデーションルール with Required
var EmailRuleRequired = append([]vd.Rule{
	vd.Required,
}, EmailRule...)

// PasswordRule パスワードバリデーションルール
//
// bcryptは72バイトまでしか扱わないので、それ以上は受け付けない
var PasswordRule = []vd.Rule{
	is.PrintableASCII,
	vd.RuneLength(6, 72),
}

// PasswordRuleRequired パスワードバリデーションルール with Required
var PasswordRuleRequired = append([]vd.Rule{
	vd.Required,
}, PasswordRule...)

// FullNameRule 表示名バリデーションルール
var FullNameRule = []vd.Rule{
	vd.RuneLength(1, 64),
}

// FullNameRuleRequired 表示名バリデーションルール with Required
var FullNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, FullNameRule...)

// BioRule 自己紹介バリデーションルール
var BioRule = []vd.Rule{
	vd.RuneLength(0, 500),
}

// MessageTextRule メッセージ本文バリデーションルール
var MessageTextRule = []vd.Rule{
	vd.RuneLength(0, 10000),
}
