package dailyreport

import "errors"

var (
	ErrReportNotFound      = errors.New("daily report not found")
	ErrReportExists        = errors.New("daily report already exists for this date")
	ErrReportNotEditable   = errors.New("daily report can no longer be edited")
	ErrReportNotSubmitted  = errors.New("daily report has not been submitted")
	ErrReportAlreadyFinal  = errors.New("daily report is already approved or rejected")
	ErrRejectReasonMissing = errors.New("reject reason is required")
)
