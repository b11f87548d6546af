package cli

import (
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Prompter は対話入力の抽象です。
type Prompter interface {
	// Select は options から 1 つを選ばせ、そのインデックスを返します。
	Select(message string, options []string) (int, error)
	// Input は 1 行の入力を受け付けます。validate がエラーを返す間は再入力を求めます。
	Input(message string, validate func(string) error) (string, error)
}

const menuPageSize = 15

// SurveyPrompter は survey を利用した端末向け Prompter です。
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter は標準入出力を使う SurveyPrompter を生成します。
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

// Select implements Prompter.
func (p *SurveyPrompter) Select(message string, options []string) (int, error) {
	var idx int
	q := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: menuPageSize,
	}
	if err := survey.AskOne(q, &idx, p.opts...); err != nil {
		return 0, err
	}
	return idx, nil
}

// Input implements Prompter.
func (p *SurveyPrompter) Input(message string, validate func(string) error) (string, error) {
	opts := p.opts
	if validate != nil {
		opts = append(opts[:len(opts):len(opts)], survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}

	var answer string
	if err := survey.AskOne(&survey.Input{Message: message}, &answer, opts...); err != nil {
		return "", err
	}
	return answer, nil
}

// isInterrupt は操作者による中断 (Ctrl-C や入力終端) かどうかを判定します。
func isInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF)
}
