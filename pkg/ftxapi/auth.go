package ftxapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/http/httpguts"

	"github.com/DouglasGray/ftx-rest-client/pkg/types"
)

// Headers the exchange reads authentication material from.
const (
	keyHeader        = "FTX-KEY"
	signHeader       = "FTX-SIGN"
	tsHeader         = "FTX-TS"
	subaccountHeader = "FTX-SUBACCOUNT"
)

// Authenticator signs outgoing requests with a fixed key pair. It is
// immutable after construction and safe for concurrent use; signing is a
// pure function of the held key and the request details.
type Authenticator struct {
	secret      []byte
	baseHeaders http.Header
}

// NewAuthenticator derives the signing state for the given key pair. Pass
// an empty subaccount when calls should be scoped to the main account.
// The private key is held only as HMAC key material and never appears in
// headers or logs.
func NewAuthenticator(publicKey, privateKey, subaccount string) (*Authenticator, error) {
	if len(privateKey) == 0 {
		return nil, newError(ErrInvalidKeyLength, errors.New("empty private key"))
	}

	baseHeaders := http.Header{}

	if err := setHeaderValue(baseHeaders, keyHeader, publicKey); err != nil {
		return nil, err
	}

	if subaccount != "" {
		if err := setHeaderValue(baseHeaders, subaccountHeader, url.PathEscape(subaccount)); err != nil {
			return nil, err
		}
	}

	return &Authenticator{
		secret:      []byte(privateKey),
		baseHeaders: baseHeaders,
	}, nil
}

// SignHeaders builds the full auth header set for one request: key id,
// hex signature, millisecond timestamp and, when configured, the
// subaccount. The timestamp is caller supplied so signatures are
// reproducible; pathWithQuery is the resolved path including any query
// string, and body is the exact JSON payload that will be sent, or nil.
func (a *Authenticator) SignHeaders(
	ts types.UnixTimestamp, method, pathWithQuery string, body []byte,
) http.Header {
	headers := a.baseHeaders.Clone()
	headers.Set(signHeader, a.sign(ts, method, pathWithQuery, body))
	headers.Set(tsHeader, ts.String())
	return headers
}

// sign computes the lowercase hex HMAC-SHA256 over the canonical message
// "{timestamp}{METHOD}/api{path}{body}".
func (a *Authenticator) sign(ts types.UnixTimestamp, method, pathWithQuery string, body []byte) string {
	mac := hmac.New(sha256.New, a.secret)
	mac.Write([]byte(ts.String()))
	mac.Write([]byte(strings.ToUpper(method)))
	mac.Write([]byte("/api"))
	mac.Write([]byte(pathWithQuery))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func setHeaderValue(headers http.Header, key, value string) error {
	if !httpguts.ValidHeaderFieldValue(value) {
		return newError(ErrInvalidHeaderValue, errors.Errorf("could not use %s as a %s header value", value, key))
	}

	headers.Set(key, value)
	return nil
}
