/*
Package auth provides token minting and verification.

# Tokens

Tokens are HS256 JWTs whose claims are exactly the principal's id and
password:

	token, err := auth.SignToken(secret, "username-ali", "pw")
	id, err := auth.DecodeToken(secret, token)

Because the claims carry no issued-at or expiry, the token is a pure
function of (secret, id, password). A principal's token stays valid for as
long as its password is unchanged, and two logins with the same credentials
return the same token. There is no revocation.
*/
package auth
