package usecases

import (
	"context"

	"gatepass/internal/application/gatepass/dto"
)

type SubmitRequestExecutor interface {
	Execute(ctx context.Context, cmd SubmitRequestCommand) (*SubmitRequestResult, error)
}

type ForwardRequestExecutor interface {
	Execute(ctx context.Context, cmd ForwardRequestCommand) (*ForwardRequestResult, error)
}

type ApproveRequestExecutor interface {
	Execute(ctx context.Context, cmd ApproveRequestCommand) (*ApproveRequestResult, error)
}

type RejectRequestExecutor interface {
	Execute(ctx context.Context, cmd RejectRequestCommand) (*RejectRequestResult, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error)
}
