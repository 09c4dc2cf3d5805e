package domain

// Identity provider error codes.
const (
	CodeUserNotFound       = "auth/user-not-found"
	CodeWrongPassword      = "auth/wrong-password"
	CodeInvalidCredential  = "auth/invalid-credential"
	CodeInvalidEmail       = "auth/invalid-email"
	CodeEmailInUse         = "auth/email-already-in-use"
	CodeWeakPassword       = "auth/weak-password"
	CodeTooManyRequests    = "auth/too-many-requests"
	CodeUserDisabled       = "auth/user-disabled"
	CodeInvalidCustomToken = "auth/invalid-custom-token"
)

// MinPasswordLength is the shortest password the provider accepts.
const MinPasswordLength = 6

// User-facing messages.
const (
	MsgAccountNotFound   = "Conta não encontrada."
	MsgWrongPassword     = "Senha incorreta."
	MsgInvalidEmail      = "Formato de e-mail inválido."
	MsgTooManyRequests   = "Muitas tentativas. Tente novamente mais tarde."
	MsgUserDisabled      = "Esta conta foi desativada."
	MsgConnectionFailure = "Erro de conexão ou servidor."

	MsgPasswordTooShort  = "A senha deve ter pelo menos 6 caracteres."
	MsgEmailInUse        = "Este e-mail já está registrado."
	MsgWeakPassword      = "A senha é muito fraca (mínimo de 6 caracteres)."
	MsgRegistrationEmail = "O formato do e-mail é inválido."
	MsgRegistrationFail  = "Erro ao criar conta. Verifique os dados."
	MsgSignUpFail        = "Erro ao criar conta. E-mail já em uso ou inválido."
	MsgProfileWriteFail  = "Falha ao salvar o perfil do usuário."
	MsgRegistered        = "Cadastro realizado com sucesso! Você será redirecionado."

	MsgEmailRequired  = "Por favor, digite seu e-mail."
	MsgResetNoAccount = "O e-mail não corresponde a nenhum usuário registrado."
	MsgResetFail      = "Não foi possível enviar o e-mail. Tente novamente."
	MsgResetLinkSent  = "Link de redefinição enviado com sucesso! Verifique sua caixa de entrada."
	MsgSignOutFail    = "Falha ao sair. Tente novamente."

	MsgNotAuthenticated = "Faça login para continuar."
	MsgProfileNotFound  = "Perfil não encontrado."
)

// SignInMessage maps a sign-in failure code to a user-facing message.
func SignInMessage(code string) string {
	switch code {
	case CodeUserNotFound:
		return MsgAccountNotFound
	case CodeWrongPassword, CodeInvalidCredential:
		return MsgWrongPassword
	case CodeInvalidEmail:
		return MsgInvalidEmail
	case CodeTooManyRequests:
		return MsgTooManyRequests
	case CodeUserDisabled:
		return MsgUserDisabled
	case "":
		return MsgConnectionFailure
	}
	return "Erro de Autenticação: " + code
}

// SignUpMessage maps a quick sign-up failure code to a user-facing message.
func SignUpMessage(code string) string {
	if code == CodeEmailInUse {
		return MsgEmailInUse
	}
	return withCode(MsgSignUpFail, code)
}

// RegistrationMessage maps an account-creation failure code during registration.
func RegistrationMessage(code string) string {
	switch code {
	case CodeEmailInUse:
		return MsgEmailInUse
	case CodeWeakPassword:
		return MsgWeakPassword
	case CodeInvalidEmail:
		return MsgRegistrationEmail
	}
	return withCode(MsgRegistrationFail, code)
}

// ResetMessage maps a password-reset failure code to a user-facing message.
func ResetMessage(code string) string {
	switch code {
	case CodeUserNotFound:
		return MsgResetNoAccount
	case CodeInvalidEmail:
		return MsgInvalidEmail
	}
	return withCode(MsgResetFail, code)
}

// withCode keeps unmapped provider codes visible for diagnosis.
func withCode(msg, code string) string {
	if code == "" {
		return msg
	}
	return msg + " (" + code + ")"
}
