//go:build windows

package service

import "golang.org/x/sys/windows"

// IsElevated reports whether the process token is a member of the
// BUILTIN\Administrators group. Under UAC this is false for a filtered
// token, so it also tells whether the process runs "As Administrator".
func IsElevated() bool {
	var sid *windows.SID

	err := windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&sid,
	)
	if err != nil {
		return false
	}
	defer windows.FreeSid(sid)

	token := windows.Token(0)
	isMember, err := token.IsMember(sid)
	if err != nil {
		return false
	}
	return isMember
}
