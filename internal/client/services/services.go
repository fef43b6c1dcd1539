// Package services contains typed wrappers over the library backend REST API.
// Every call goes through a Sender, normally the request gateway, so token
// injection and the refresh-and-retry path apply uniformly.
package services

import (
	"context"

	"github.com/dmitrijs2005/libadmin/internal/client/gateway"
	"github.com/dmitrijs2005/libadmin/internal/common"
)

// Sender performs one gateway round trip.
type Sender interface {
	Send(ctx context.Context, req gateway.Request) *gateway.Response
}

// call sends req and, on success, decodes the data member into out (when
// out is non-nil).
func call(ctx context.Context, s Sender, req gateway.Request, out any) error {
	resp := s.Send(ctx, req)
	if err := resp.Err(); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return resp.Decode(out)
}

// callJSON is call with body encoded as JSON.
func callJSON(ctx context.Context, s Sender, req gateway.Request, body, out any) error {
	req, err := req.WithJSON(body)
	if err != nil {
		return err
	}
	return call(ctx, s, req, out)
}

func apiPath(p string) string {
	return common.APIPrefix + p
}
