package quizgen

import "strings"

const (
	promptIntro = "请生成一道可使用以下方法解决的的数学题目。\n\n方法说明：\n"

	promptExample = "\n\n参考例题：\n%s\n\n请根据参考例题中使用的解题方法，生成一道使用相同或类似解题方法的题目。"

	promptRequirements = `

要求：
1. 题目应该与专题内容相关，难度适中%s
2. 题目使用Markdown格式，数学公式必须使用标准的LaTeX格式：
   - 行内公式：使用 $...$ 格式（例如：$x^2 + y^2 = r^2$）
   - 多行公式：使用 $$...$$ 格式（例如：$$\int_a^b f(x)dx$$）
   - 重要：不要使用 \(...\) 或 \[...\] 等其他格式，必须使用 $ 和 $$ 符号
3. 答案也要使用Markdown格式，数学公式同样必须使用标准的LaTeX格式（$...$ 和 $$...$$）
4. 请按照以下格式返回：
题目：[题目内容]
答案：[答案内容]

请确保题目和答案都是完整的，可以直接使用。`

	exampleConsistency = "，并且与参考例题的解题方法一致"
)

// BuildPrompt renders the generation instruction for a topic.
// The example block is emitted only when exampleContent has non-whitespace text.
func BuildPrompt(topicContent, exampleContent string) string {
	var b strings.Builder
	b.WriteString(promptIntro)
	b.WriteString(topicContent)

	example := strings.TrimSpace(exampleContent)
	consistency := ""
	if example != "" {
		b.WriteString(strings.Replace(promptExample, "%s", example, 1))
		consistency = exampleConsistency
	}

	b.WriteString(strings.Replace(promptRequirements, "%s", consistency, 1))
	return b.String()
}
