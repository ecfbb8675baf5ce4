package engine

// LLM prompt templates — data only, no logic.

// fourPartTopic is the per-topic analysis structure shared by the title and inference templates.
const fourPartTopic = `1. Detailed Explanation:
   - Provide a detailed and thorough explanation of the topic
   - Include any important context or information that adds depth to the understanding

2. Background Context:
   - Explain why this topic is being discussed
   - What triggered this discussion
   - Current relevance of this topic

3. Key Phrases and Concepts:
   - List important phrases, terms, or concepts that are central to understanding this topic
   - Include relevant quotes or specific language used in the text
   - Highlight any recurring themes or patterns

4. Overall Summary:
   - Summarize the topic in a concise, high-level overview that captures the essence of the discussion`

// analysisNote closes the title, chapter and inference templates.
const analysisNote = `Note: Focus on extracting meaningful connections and context for each topic while maintaining the relationship between topics where relevant.
Take ample time to thoroughly analyze the input text, ensuring a nuanced and comprehensive understanding.
- If it helps clarity, feel free to use:
  - Emojis to highlight key ideas
  - Simple tables to compare points or summarize data
  - ASCII-based diagrams or flowcharts (textual graphs) for conceptual relationships`

// promptTitleTopics asks for the 4-part analysis of every topic named in the title.
// Args: language, title instruction (may be empty), transcript.
const promptTitleTopics = `The following text is in its original language. Provide the output in this language: %s.

%s
For each topic, analyze the input text and provide the output in the following structure:

` + fourPartTopic + `

` + analysisNote + `

Input text:
%s
`

// titleTopicsInstruction lists the bracketed topics split from the title.
// Args: topics rendered as "[A] [B]".
const titleTopicsInstruction = `Analyze the following topics from the title:
%s

For each topic mentioned in the title, provide analysis in the format below:
`

// promptChapterTopics asks for the 4-part analysis of each chapter.
// Args: language, numbered chapter list, transcript.
const promptChapterTopics = `You are provided with the following text. Please analyze it and produce a summary in %s.

We have identified the following Chapters (topics):
%s

For each chapter listed above, analyze the content of the text and provide the following:

1. Detailed Explanation:
   - A thorough explanation of the chapter’s main points
   - Any important context or subtopics

2. Background Context:
   - Reasons or triggers for this chapter being discussed
   - Current relevance or context

3. Key Phrases and Concepts:
   - Important phrases, terms, or recurring ideas central to understanding this chapter
   - Quotes or noteworthy expressions

4. Overall Summary:
   - A concise, high-level overview capturing the essence of the chapter

` + analysisNote + `

Text to analyze:
"""%s"""
`

// promptInferTopics is used when no chapters exist; the model picks the topics itself.
// Args: language, title line, transcript.
const promptInferTopics = `You are provided with the following text. Please analyze it and produce a summary in %s.

%s
No Chapters were found.
Based on the title (if available) and the text, please identify the main topics or sections yourself.
Then, for each identified topic, provide:

1. Detailed Explanation:
   - A thorough explanation of the topic’s main points
   - Any important context or subtopics

2. Background Context:
   - Reasons or triggers for this topic being discussed
   - Current relevance or context

3. Key Phrases and Concepts:
   - Important phrases, terms, or recurring ideas central to understanding this topic
   - Quotes or noteworthy expressions

4. Overall Summary:
   - A concise, high-level overview capturing the essence of the topic

` + analysisNote + `

Text to analyze:
"""%s"""
`

// Title lines for promptInferTopics.
const (
	inferTitleLine   = "The title is: \"%s\".\n"
	inferNoTitleLine = "No explicit title is provided.\n"
)

// detailedNoteExtras is the emoji/table/diagram hint shared by both detailed templates.
const detailedNoteExtras = `- Take ample time to thoroughly analyze the input text to ensure a nuanced and comprehensive understanding.
- If it helps clarity, feel free to use:
  - Emojis to highlight key ideas
  - Simple tables to compare points or summarize data
  - ASCII-based diagrams or flowcharts (textual graphs) for conceptual relationships`

// promptDetailedChapters — overall summary paragraph, then the 4-part structure per chapter.
// Args: language, chapter lines, transcript.
const promptDetailedChapters = `You are provided with the following text. Please analyze it and produce a **detailed summary** in %s.

**Step 1: Overall Summary (First Paragraph)**
   Please provide a concise yet comprehensive overview of the entire text **before** diving into each chapter.

**Step 2: Chapters**
We have identified the following chapters (topics) :
%s

For **each chapter** listed above, please detail:

1. **Detailed Explanation**
   - A thorough explanation of the chapter’s main points
   - Any important context or subtopics

2. **Background Context**
   - Reasons or triggers for this chapter being discussed
   - Current relevance or context

3. **Key Phrases and Concepts**
   - Important phrases, terms, or recurring ideas central to understanding this chapter
   - Quotes or noteworthy expressions

4. **Overall Summary**
   - A concise, high-level overview capturing the essence of the chapter

**Note**
- Focus on extracting meaningful connections and context for each chapter while maintaining relationships among topics.
` + detailedNoteExtras + `

**Text to analyze**:
"""%s"""
`

// promptDetailedGeneral — overall summary paragraph, then free-form elaboration.
// Args: language, transcript.
const promptDetailedGeneral = `You are provided with the following text. Please analyze it and produce a **detailed summary** in %s.

**Step 1: Overall Summary (First Paragraph)**
   First, provide an overarching summary that captures the main points of the entire text.

**Step 2: Additional Analysis**
   - After giving the overall summary, please elaborate on:
     - Key background/context
     - Important phrases or concepts
     - Any other subtopics or noteworthy details

**Note**
- You may structure your analysis however it fits best, but ensure clarity and depth.
- Focus on extracting meaningful connections and context for each chapter while maintaining relationships among topics.
` + detailedNoteExtras + `

**Text to analyze**:
"""%s"""
`
