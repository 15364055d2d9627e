package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"foodshare-api/internal/common"
	"foodshare-api/internal/entity"
	"foodshare-api/internal/feed"
	"foodshare-api/internal/repo"
	"foodshare-api/internal/repo/memdb"
	"foodshare-api/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret"

func signToken(secret, sub string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}

	return signed
}

type ControllerSuite struct {
	suite.Suite

	services *service.Services
	handler  *echo.Echo
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	hub := feed.NewHub()
	store := memdb.NewStore(hub)
	s.services = service.NewServices(service.Dependencies{Repos: repo.NewMemoryRepositories(store), Hub: hub})

	for _, u := range []entity.CreateUserInput{
		{Uid: "d1", Role: common.Donor, Name: "Dana", Email: "dana@example.com", Phone: "111"},
		{Uid: "d2", Role: common.Donor, Name: "Dev"},
		{Uid: "r1", Role: common.Receiver, Name: "Rae", Email: "rae@example.com", Phone: "222"},
	} {
		u := u
		_, err := s.services.User.CreateProfile(context.Background(), &u)
		s.Require().NoError(err)
	}

	s.handler = echo.New()
	SetupRoutesHandlers(s.handler, s.services, testSecret)
}

// do sends a request as uid, anonymous when uid is empty.
func (s *ControllerSuite) do(method, path, uid, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if uid != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(testSecret, uid))
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	return rec
}

func (s *ControllerSuite) decode(rec *httptest.ResponseRecorder, v interface{}) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func listingJSON(title string) string {
	expiryDate := time.Now().Add(2 * time.Hour).UTC().Format(time.RFC3339)

	return fmt.Sprintf(`{"title":%q,"quantity":"2 trays","locationText":"Market Rd","latitude":12.97,"longitude":77.59,"expiryDate":%q}`,
		title, expiryDate)
}

func (s *ControllerSuite) postListing(uid, title string) entity.ListingOutputModel {
	rec := s.do(http.MethodPost, "/api/listings/new", uid, listingJSON(title))
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var out entity.ListingOutputModel
	s.decode(rec, &out)

	return out
}

func (s *ControllerSuite) TestPing() {
	rec := s.do(http.MethodGet, "/api/ping", "", "")
	s.Equal(http.StatusOK, rec.Code)
}

type failingDiagnostics struct{}

func (failingDiagnostics) Ping() error {
	return fmt.Errorf("%w: connection refused", service.ErrStoreUnavailable)
}

func (s *ControllerSuite) TestPingStoreUnavailable() {
	s.services.Diagnostics = failingDiagnostics{}
	s.handler = echo.New()
	SetupRoutesHandlers(s.handler, s.services, testSecret)

	rec := s.do(http.MethodGet, "/api/ping", "", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var out errorResponse
	s.decode(rec, &out)
	s.NotContains(out.Reason, "connection refused")
}

func (s *ControllerSuite) TestIdentity() {
	rec := s.do(http.MethodGet, "/api/listings", "", "")
	s.Equal(http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken("another-secret", "d1"))
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	s.Equal(http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic ZDE6cGFzcw==")
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/users/me", "", "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ControllerSuite) TestTokenWithoutSubject() {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	signed, err := token.SignedString([]byte(testSecret))
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ControllerSuite) TestOnboarding() {
	rec := s.do(http.MethodPost, "/api/users/me", "n1", `{"name":"Nia","email":"nia@example.com"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var user entity.UserOutputModel
	s.decode(rec, &user)
	s.Equal(string(common.Unassigned), user.Role)

	rec = s.do(http.MethodPost, "/api/users/me", "n1", `{"name":"Nia"}`)
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/api/listings/new", "n1", listingJSON("bread"))
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPatch, "/api/users/me", "n1", `{"role":"receiver","phone":"333"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &user)
	s.Equal(string(common.Receiver), user.Role)
	s.Equal("333", user.Phone)

	rec = s.do(http.MethodPatch, "/api/users/me", "n1", `{"role":"donor"}`)
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPatch, "/api/users/me", "n1", `{"role":"admin"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ControllerSuite) TestPostListingValidation() {
	rec := s.do(http.MethodPost, "/api/listings/new", "d1", `{"title":"soup","category":"fish"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	var out errorResponse
	s.decode(rec, &out)
	s.Contains(out.Reason, "'Category'")

	rec = s.do(http.MethodPost, "/api/listings/new", "d1", `{"title":"soup","quantity":"1","locationText":"x","latitude":1,"longitude":1,"expiryDate":"tomorrow"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/listings/new", "d1", `{"title":"soup"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/listings/new", "d1", `{"title":`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/listings/new", "r1", listingJSON("soup"))
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/listings/new", "", listingJSON("soup"))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ControllerSuite) TestFeedQuery() {
	s.postListing("d1", "bread")

	rec := s.do(http.MethodGet, "/api/listings?lat=abc&lon=1", "r1", "")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/listings?lat=12.97", "r1", "")
	s.Equal(http.StatusBadRequest, rec.Code)

	for _, query := range []string{"maxDistanceKm=NaN", "maxDistanceKm=Inf", "maxDistanceKm=-3", "lat=12.97&lon=NaN"} {
		rec = s.do(http.MethodGet, "/api/listings?"+query, "r1", "")
		s.Equal(http.StatusBadRequest, rec.Code, query)
	}

	// without a location the distance filter is skipped
	rec = s.do(http.MethodGet, "/api/listings?maxDistanceKm=5", "r1", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var unfiltered []entity.ListingOutputModel
	s.decode(rec, &unfiltered)
	s.Len(unfiltered, 1)

	rec = s.do(http.MethodGet, "/api/listings?category=dessert", "r1", "")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/listings?lat=12.98&lon=77.6&maxDistanceKm=5", "r1", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var listings []entity.ListingOutputModel
	s.decode(rec, &listings)
	s.Require().Len(listings, 1)
	s.NotNil(listings[0].DistanceKm)

	rec = s.do(http.MethodGet, "/api/listings?lat=28.6&lon=77.2&maxDistanceKm=5", "r1", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &listings)
	s.Empty(listings)
}

func (s *ControllerSuite) TestEditAndDeleteOwnership() {
	listing := s.postListing("d1", "bread")

	rec := s.do(http.MethodPatch, "/api/listings/"+listing.Id+"/edit", "d2", listingJSON("stolen"))
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPatch, "/api/listings/"+listing.Id+"/edit", "d1", listingJSON("rye bread"))
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var edited entity.ListingOutputModel
	s.decode(rec, &edited)
	s.Equal("rye bread", edited.Title)

	rec = s.do(http.MethodDelete, "/api/listings/"+listing.Id, "d2", "")
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/api/listings/"+listing.Id, "d1", "")
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/listings/"+listing.Id, "d1", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ControllerSuite) TestSetListingStatus() {
	listing := s.postListing("d1", "bread")
	path := "/api/listings/" + listing.Id + "/status"

	rec := s.do(http.MethodPatch, path, "d1", `{"status":"claimed"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPatch, path, "d2", `{"status":"reserved"}`)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPatch, path, "d1", `{"status":"reserved"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var out entity.ListingOutputModel
	s.decode(rec, &out)
	s.Equal("reserved", out.Status)

	rec = s.do(http.MethodPost, "/api/listings/"+listing.Id+"/requests", "r1", "")
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ControllerSuite) TestRequestLifecycle() {
	listing := s.postListing("d1", "bread")

	rec := s.do(http.MethodPost, "/api/listings/"+listing.Id+"/requests", "r1", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var request entity.RequestOutputModel
	s.decode(rec, &request)
	s.Equal(common.Pending, request.Status)

	rec = s.do(http.MethodPost, "/api/listings/"+listing.Id+"/requests", "r1", "")
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/api/listings/"+listing.Id+"/requests", "d2", "")
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/requests/inbox", "d1", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var inbox []entity.RequestOutputModel
	s.decode(rec, &inbox)
	s.Require().Len(inbox, 1)

	rec = s.do(http.MethodGet, "/api/requests/inbox?tab=archive", "d1", "")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/requests/"+request.Id, "r1", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var detail entity.RequestDetailOutputModel
	s.decode(rec, &detail)
	s.Nil(detail.Contact)

	rec = s.do(http.MethodPut, "/api/requests/"+request.Id+"/accept", "r1", "")
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPut, "/api/requests/"+request.Id+"/accept", "d1", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &request)
	s.Equal(common.Accepted, request.Status)

	rec = s.do(http.MethodPut, "/api/requests/"+request.Id+"/accept", "d1", "")
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPut, "/api/requests/"+request.Id+"/reject", "d1", "")
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodGet, "/api/requests/"+request.Id, "r1", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &detail)
	s.Require().NotNil(detail.Contact)
	s.Equal("dana@example.com", detail.Contact.Email)

	rec = s.do(http.MethodGet, "/api/listings/"+listing.Id, "r1", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var gone entity.ListingDetailOutputModel
	s.decode(rec, &gone)
	s.Nil(gone.Listing)
	s.Require().NotNil(gone.AcceptedRequest)
	s.Equal("bread", gone.AcceptedRequest.ListingTitle)

	rec = s.do(http.MethodGet, "/api/listings/"+listing.Id, "", "")
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/requests/my", "r1", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var mine []entity.RequestOutputModel
	s.decode(rec, &mine)
	s.Require().Len(mine, 1)
	s.Equal(common.Accepted, mine[0].Status)
}

func (s *ControllerSuite) TestUnknownIds() {
	rec := s.do(http.MethodGet, "/api/listings/not-a-uuid", "r1", "")
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPut, "/api/requests/not-a-uuid/accept", "d1", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ControllerSuite) TestChat() {
	rec := s.do(http.MethodPost, "/api/chat", "", `{"message":"how do I post food?"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var out entity.ChatOutputModel
	s.decode(rec, &out)
	s.Require().NotNil(out.Intent)
	s.Equal("create_post", *out.Intent)

	rec = s.do(http.MethodPost, "/api/chat", "r1", `{"message":"   "}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func TestStatusOf(t *testing.T) {
	cases := map[error]int{
		service.ErrMissingCoordinates: http.StatusBadRequest,
		service.ErrSignInRequired:     http.StatusUnauthorized,
		service.ErrDonorsOnly:         http.StatusForbidden,
		service.ErrNotListingOwner:    http.StatusForbidden,
		service.ErrListingNotFound:    http.StatusNotFound,
		service.ErrDuplicateRequest:   http.StatusConflict,
		service.ErrRequestNotPending:  http.StatusConflict,
		service.ErrStoreUnavailable:   http.StatusServiceUnavailable,
		fmt.Errorf("boom"):            http.StatusInternalServerError,
	}

	for err, status := range cases {
		assert.Equal(t, status, statusOf(err), err.Error())
	}
}
