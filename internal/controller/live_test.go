package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"foodshare-api/internal/entity"

	"github.com/gorilla/websocket"
)

func (s *ControllerSuite) dial(server *httptest.Server, path, uid string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(server.URL, "http") + path
	if uid != "" {
		url += "?" + tokenQueryParam + "=" + signToken(testSecret, uid)
	}

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	return conn
}

func (s *ControllerSuite) readDiff(conn *websocket.Conn) entity.Diff[entity.ListingOutputModel] {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))

	var d entity.Diff[entity.ListingOutputModel]
	s.Require().NoError(conn.ReadJSON(&d))

	return d
}

func (s *ControllerSuite) TestLiveListings() {
	server := httptest.NewServer(s.handler)
	defer server.Close()

	first := s.postListing("d1", "bread")
	conn := s.dial(server, "/api/live/listings", "r1")

	initial := s.readDiff(conn)
	s.Require().Len(initial.Added, 1)
	s.Equal(first.Id, initial.Added[0].Id)
	s.Empty(initial.Removed)

	second := s.postListing("d2", "soup")
	d := s.readDiff(conn)
	s.Require().Len(d.Added, 1)
	s.Equal(second.Id, d.Added[0].Id)

	rec := s.do(http.MethodDelete, "/api/listings/"+first.Id, "d1", "")
	s.Require().Equal(http.StatusNoContent, rec.Code)
	d = s.readDiff(conn)
	s.Equal([]string{first.Id}, d.Removed)
}

func (s *ControllerSuite) TestLiveRejectsForbiddenViewer() {
	server := httptest.NewServer(s.handler)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/live/listings/my?" + tokenQueryParam + "=" + signToken(testSecret, "r1")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().Error(err)
	s.Require().NotNil(resp)
	s.Equal(http.StatusForbidden, resp.StatusCode)
}
