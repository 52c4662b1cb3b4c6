package profile

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

func serve(t *testing.T, m Module, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func multipartRequest(t *testing.T, fields map[string]string, image []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "avatar.png")
		if err != nil {
			t.Fatalf("create file: %v", err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, routepath.AppProfileEdit, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestProfilePageRefreshesSession(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{}
	m := NewWithGateway(&fakeGateway{profile: buyerProfile()}, sessions, testBase("buyer"))
	rr := serve(t, m, httptest.NewRequest(http.MethodGet, routepath.AppProfile, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Ana Lima") || !strings.Contains(body, "visa, paypal") {
		t.Fatalf("profile page missing details: %q", body)
	}
	if sessions.calls != 1 || sessions.viewer.Name != "Ana Lima" {
		t.Fatalf("session refresh calls = %d, viewer = %+v", sessions.calls, sessions.viewer)
	}
}

func TestEditPageShowsBuyerFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role string
		want bool
	}{
		{role: "buyer", want: true},
		{role: "vendor", want: false},
	}
	for _, tc := range tests {
		m := NewWithGateway(&fakeGateway{profile: buyerProfile()}, nil, testBase(tc.role))
		rr := serve(t, m, httptest.NewRequest(http.MethodGet, routepath.AppProfileEdit, nil))
		if got := strings.Contains(rr.Body.String(), `name="shippingAddress"`); got != tc.want {
			t.Fatalf("role %s shipping field = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestEditWithoutChangesRerenders(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{profile: buyerProfile()}
	req := multipartRequest(t, map[string]string{"name": "Ana Lima", "shippingAddress": "1 Main St", "paymentMethods": "visa, paypal"}, nil)
	rr := serve(t, NewWithGateway(gateway, nil, testBase("buyer")), req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rr.Body.String(), `action="/app/profile/edit"`) {
		t.Fatal("edit form not re-rendered")
	}
	if len(gateway.updates) != 0 {
		t.Fatal("unexpected update")
	}
}

func TestEditUploadsImage(t *testing.T) {
	t.Parallel()

	png := []byte("\x89PNG\r\n\x1a\n0000")
	gateway := &fakeGateway{profile: buyerProfile()}
	req := multipartRequest(t, map[string]string{"name": "Ana Lima", "shippingAddress": "1 Main St", "paymentMethods": "visa, paypal"}, png)
	rr := serve(t, NewWithGateway(gateway, nil, testBase("buyer")), req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != routepath.AppProfile {
		t.Fatalf("Location = %q, want %q", got, routepath.AppProfile)
	}
	if len(gateway.updates) != 1 || gateway.updates[0].Image == nil {
		t.Fatalf("updates = %+v", gateway.updates)
	}
	if got := gateway.updates[0].Image.ContentType; got != "image/png" {
		t.Fatalf("ContentType = %q, want %q", got, "image/png")
	}
	if gateway.updates[0].Name != nil || gateway.updates[0].ShippingAddress != nil {
		t.Fatal("unchanged fields were sent")
	}
}
